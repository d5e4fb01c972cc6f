package members

// CreateMemberInput carries the fields accepted when registering a member.
type CreateMemberInput struct {
	Name           string `json:"name" validate:"required,min=2"`
	NameTE         string `json:"name_te"`
	Phone          string `json:"phone" validate:"required,min=10"`
	Address        string `json:"address"`
	IDProof        string `json:"id_proof"`
	GuarantorName  string `json:"guarantor_name"`
	GuarantorPhone string `json:"guarantor_phone"`
}

// UpdateMemberInput mirrors CreateMemberInput for edits.
type UpdateMemberInput struct {
	Name           string `json:"name" validate:"required,min=2"`
	NameTE         string `json:"name_te"`
	Phone          string `json:"phone" validate:"required,min=10"`
	Address        string `json:"address"`
	IDProof        string `json:"id_proof"`
	GuarantorName  string `json:"guarantor_name"`
	GuarantorPhone string `json:"guarantor_phone"`
}

// ListFilters narrows member listings.
type ListFilters struct {
	Search string
	Limit  int
}
