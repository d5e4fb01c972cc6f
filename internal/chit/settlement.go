package chit

// Settlement holds the derived monetary fields persisted on an auction.
type Settlement struct {
	Discount          float64 `json:"discount"`
	ForemanCommission float64 `json:"foreman_commission"`
	DividendPerMember float64 `json:"dividend_per_member"`
}

// Settle computes the settlement for a winning bid. A bid at or above the
// chit value yields zero discount, commission and dividend rather than a
// negative value or an error. Callers validate ranges before invocation;
// out-of-policy commission percentages pass through unclamped, but no
// non-negative input ever produces a negative output.
func Settle(chitValue, bidAmount, commissionPercent float64, memberCount int) Settlement {
	discount := chitValue - bidAmount
	if discount < 0 {
		discount = 0
	}
	commission := discount * commissionPercent / 100
	if commission < 0 {
		commission = 0
	}
	var dividend float64
	if memberCount > 0 {
		dividend = (discount - commission) / float64(memberCount)
		if dividend < 0 {
			dividend = 0
		}
	}
	return Settlement{
		Discount:          discount,
		ForemanCommission: commission,
		DividendPerMember: dividend,
	}
}
