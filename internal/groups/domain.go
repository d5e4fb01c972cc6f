package groups

import (
	"time"

	"github.com/smk-chits/smk-chits/internal/chit"
)

// CreateGroupInput carries the fields accepted when opening a chit group.
// Commission is bounded at the door; the settlement calculator itself never
// enforces the range.
type CreateGroupInput struct {
	Name               string    `json:"name" validate:"required,min=2"`
	ChitValue          float64   `json:"chit_value" validate:"required,gt=0"`
	MonthlyInstallment float64   `json:"monthly_installment" validate:"required,gt=0"`
	MemberCount        int       `json:"member_count" validate:"required,gt=0"`
	DurationMonths     int       `json:"duration_months" validate:"required,gt=0"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	AuctionDay         int       `json:"auction_day" validate:"min=1,max=31"`
	CommissionPercent  float64   `json:"commission_percent" validate:"min=0,max=5"`
}

// UpdateGroupInput mirrors CreateGroupInput for edits. Status is changed
// through the transition endpoint, never here.
type UpdateGroupInput struct {
	Name               string    `json:"name" validate:"required,min=2"`
	ChitValue          float64   `json:"chit_value" validate:"required,gt=0"`
	MonthlyInstallment float64   `json:"monthly_installment" validate:"required,gt=0"`
	MemberCount        int       `json:"member_count" validate:"required,gt=0"`
	DurationMonths     int       `json:"duration_months" validate:"required,gt=0"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	AuctionDay         int       `json:"auction_day" validate:"min=1,max=31"`
	CommissionPercent  float64   `json:"commission_percent" validate:"min=0,max=5"`
}

// ListFilters narrows group listings.
type ListFilters struct {
	Status chit.GroupStatus
	Limit  int
}
