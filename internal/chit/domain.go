package chit

import "time"

// GroupStatus tracks the lifecycle of a chit group.
type GroupStatus string

const (
	GroupUpcoming  GroupStatus = "upcoming"
	GroupActive    GroupStatus = "active"
	GroupCompleted GroupStatus = "completed"
)

// TicketStatus tracks the lifecycle of a member's enrollment slot.
type TicketStatus string

const (
	TicketActive    TicketStatus = "active"
	TicketWon       TicketStatus = "won"
	TicketDefaulted TicketStatus = "defaulted"
)

// CollectionType tags how a payment was collected. Informational only; accrual
// math always works in monthly installments.
type CollectionType string

const (
	CollectionDaily   CollectionType = "daily"
	CollectionWeekly  CollectionType = "weekly"
	CollectionMonthly CollectionType = "monthly"
)

// Member is an identity record, owned independently of any group.
type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NameTE         string    `json:"name_te"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	IDProof        string    `json:"id_proof"`
	GuarantorName  string    `json:"guarantor_name"`
	GuarantorPhone string    `json:"guarantor_phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Group is a single chit scheme instance. Duration is intended to equal
// MemberCount, one auction per month.
type Group struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	ChitValue          float64     `json:"chit_value"`
	MonthlyInstallment float64     `json:"monthly_installment"`
	MemberCount        int         `json:"member_count"`
	DurationMonths     int         `json:"duration_months"`
	StartDate          time.Time   `json:"start_date"`
	AuctionDay         int         `json:"auction_day"`
	CommissionPercent  float64     `json:"commission_percent"`
	Status             GroupStatus `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Ticket binds one member to one group with a sequential ticket number.
type Ticket struct {
	ID           string       `json:"id"`
	MemberID     string       `json:"member_id"`
	GroupID      string       `json:"group_id"`
	TicketNumber int          `json:"ticket_number"`
	Status       TicketStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Auction records one month's reverse auction. The three derived monetary
// fields are computed once at creation from the group's commission at that
// moment and never recomputed.
type Auction struct {
	ID                string    `json:"id"`
	GroupID           string    `json:"group_id"`
	MonthNumber       int       `json:"month_number"`
	WinnerTicketID    string    `json:"winner_ticket_id"`
	WinnerMemberID    string    `json:"winner_member_id"`
	BidAmount         float64   `json:"bid_amount"`
	Discount          float64   `json:"discount"`
	ForemanCommission float64   `json:"foreman_commission"`
	DividendPerMember float64   `json:"dividend_per_member"`
	Date              time.Time `json:"date"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

// Payment is an immutable receipt tying a member, group and optional ticket
// to a collected amount.
type Payment struct {
	ID             string         `json:"id"`
	TicketID       string         `json:"ticket_id"`
	MemberID       string         `json:"member_id"`
	GroupID        string         `json:"group_id"`
	AuctionMonth   int            `json:"auction_month"`
	Amount         float64        `json:"amount"`
	PaymentDate    time.Time      `json:"payment_date"`
	CollectionType CollectionType `json:"collection_type"`
	ReceiptNumber  string         `json:"receipt_number"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Settings is the singleton configuration record. Read-modify-write, not
// versioned.
type Settings struct {
	WhatsAppTemplateEN string    `json:"whatsapp_template_en"`
	WhatsAppTemplateTE string    `json:"whatsapp_template_te"`
	DefaultCommission  float64   `json:"default_commission"`
	BusinessName       string    `json:"business_name"`
	BusinessPhone      string    `json:"business_phone"`
	BusinessAddress    string    `json:"business_address"`
	UpdatedAt          time.Time `json:"updated_at"`
}
