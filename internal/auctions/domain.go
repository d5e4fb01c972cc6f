package auctions

import "time"

// RecordInput captures one month's auction result. The settlement fields are
// derived at recording time and persisted verbatim.
type RecordInput struct {
	GroupID        string    `json:"group_id" validate:"required"`
	MonthNumber    int       `json:"month_number" validate:"required,min=1"`
	WinnerTicketID string    `json:"winner_ticket_id" validate:"required"`
	BidAmount      float64   `json:"bid_amount" validate:"min=0"`
	Date           time.Time `json:"date" validate:"required"`
	Notes          string    `json:"notes"`
}

// PreviewInput re-runs the settlement calculator without persisting, for the
// live preview while the operator edits the bid.
type PreviewInput struct {
	GroupID   string  `json:"group_id" validate:"required"`
	BidAmount float64 `json:"bid_amount" validate:"min=0"`
}
