package tickets

// EnrollInput binds a member to a group. The ticket number is assigned
// sequentially by the service.
type EnrollInput struct {
	MemberID string `json:"member_id" validate:"required"`
	GroupID  string `json:"group_id" validate:"required"`
}

// ListFilters narrows ticket listings.
type ListFilters struct {
	MemberID string
	GroupID  string
}
