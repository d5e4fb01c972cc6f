package chit

// LedgerTotals aggregates a filtered payment history against an expected
// cumulative amount.
type LedgerTotals struct {
	TotalPaid    float64 `json:"total_paid"`
	Outstanding  float64 `json:"outstanding"`
	PaymentCount int     `json:"payment_count"`
}

// Aggregate folds the payments matched by keep. Outstanding never goes
// negative; overpayment is absorbed, not reported as credit. The fold is
// order independent and has no hidden state.
func Aggregate(payments []Payment, expectedTotal float64, keep func(Payment) bool) LedgerTotals {
	var totals LedgerTotals
	for _, p := range payments {
		if keep != nil && !keep(p) {
			continue
		}
		totals.TotalPaid += p.Amount
		totals.PaymentCount++
	}
	totals.Outstanding = expectedTotal - totals.TotalPaid
	if totals.Outstanding < 0 {
		totals.Outstanding = 0
	}
	return totals
}

// ByMember keeps every payment a member made across all groups.
func ByMember(memberID string) func(Payment) bool {
	return func(p Payment) bool { return p.MemberID == memberID }
}

// ByMemberGroup keeps a member's payments within one group.
func ByMemberGroup(memberID, groupID string) func(Payment) bool {
	return func(p Payment) bool { return p.MemberID == memberID && p.GroupID == groupID }
}
