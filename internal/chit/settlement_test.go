package chit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettleZeroBid(t *testing.T) {
	s := Settle(100000, 0, 5, 20)
	require.Equal(t, 100000.0, s.Discount)
	require.Equal(t, 5000.0, s.ForemanCommission)
	require.Equal(t, 4750.0, s.DividendPerMember)
}

func TestSettleBidAtFullValue(t *testing.T) {
	s := Settle(100000, 100000, 5, 20)
	require.Equal(t, 0.0, s.Discount)
	require.Equal(t, 0.0, s.ForemanCommission)
	require.Equal(t, 0.0, s.DividendPerMember)
}

func TestSettleBidAboveValueClampsToZero(t *testing.T) {
	s := Settle(100000, 120000, 5, 20)
	require.Equal(t, 0.0, s.Discount)
	require.Equal(t, 0.0, s.ForemanCommission)
	require.Equal(t, 0.0, s.DividendPerMember)
}

func TestSettleZeroMembersYieldsZeroDividend(t *testing.T) {
	s := Settle(100000, 80000, 5, 0)
	require.Equal(t, 20000.0, s.Discount)
	require.Equal(t, 1000.0, s.ForemanCommission)
	require.Equal(t, 0.0, s.DividendPerMember)
}

func TestSettleOutOfPolicyCommissionPassesThrough(t *testing.T) {
	// Range enforcement lives at group creation; the calculator stays total.
	s := Settle(100000, 80000, 10, 20)
	require.Equal(t, 20000.0, s.Discount)
	require.Equal(t, 2000.0, s.ForemanCommission)
	require.Equal(t, 900.0, s.DividendPerMember)
}

func TestSettleNonNegativity(t *testing.T) {
	cases := []struct {
		chitValue, bid, commission float64
		members                    int
	}{
		{0, 0, 0, 0},
		{100000, 0, 0, 20},
		{100000, 99999.5, 5, 20},
		{50000, 50001, 5, 10},
		{250000, 175000, 4.5, 25},
		{100000, 80000, 120, 20}, // commission above discount
	}
	for _, tc := range cases {
		s := Settle(tc.chitValue, tc.bid, tc.commission, tc.members)
		require.GreaterOrEqual(t, s.Discount, 0.0)
		require.GreaterOrEqual(t, s.ForemanCommission, 0.0)
		require.GreaterOrEqual(t, s.DividendPerMember, 0.0)
	}
}

func TestSettleConservation(t *testing.T) {
	s := Settle(100000, 72000, 5, 20)
	require.InDelta(t, s.Discount*5/100, s.ForemanCommission, 1e-9)
	require.LessOrEqual(t, s.DividendPerMember*20, s.Discount-s.ForemanCommission+1e-9)
}
