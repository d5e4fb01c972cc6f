package collections

import "time"

// CreatePaymentInput records one collected installment. Payments are
// append only; corrections are new entries with negative-free amounts
// and a note.
type CreatePaymentInput struct {
	TicketID       string    `json:"ticket_id"`
	MemberID       string    `json:"member_id" validate:"required"`
	GroupID        string    `json:"group_id" validate:"required"`
	AuctionMonth   int       `json:"auction_month" validate:"min=0"`
	Amount         float64   `json:"amount" validate:"required,gt=0"`
	PaymentDate    time.Time `json:"payment_date" validate:"required"`
	CollectionType string    `json:"collection_type" validate:"required,oneof=daily weekly monthly"`
	Notes          string    `json:"notes"`
}

// ListFilters narrows payment listings.
type ListFilters struct {
	MemberID string
	GroupID  string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// ExportRow is one line of the payments CSV with names resolved.
type ExportRow struct {
	ReceiptNumber  string
	PaymentDate    time.Time
	MemberName     string
	GroupName      string
	Amount         float64
	CollectionType string
	Notes          string
}
