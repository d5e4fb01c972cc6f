package settings

// UpdateSettingsInput replaces the singleton configuration record.
type UpdateSettingsInput struct {
	WhatsAppTemplateEN string  `json:"whatsapp_template_en" validate:"required"`
	WhatsAppTemplateTE string  `json:"whatsapp_template_te"`
	DefaultCommission  float64 `json:"default_commission" validate:"min=0,max=5"`
	BusinessName       string  `json:"business_name" validate:"required"`
	BusinessPhone      string  `json:"business_phone"`
	BusinessAddress    string  `json:"business_address"`
}
