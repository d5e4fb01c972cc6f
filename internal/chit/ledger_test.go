package chit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func payments() []Payment {
	return []Payment{
		{ID: "p1", MemberID: "m1", GroupID: "g1", Amount: 5000},
		{ID: "p2", MemberID: "m1", GroupID: "g1", Amount: 5000},
		{ID: "p3", MemberID: "m1", GroupID: "g2", Amount: 3000},
		{ID: "p4", MemberID: "m2", GroupID: "g1", Amount: 5000},
	}
}

func TestAggregatePerMemberPerGroup(t *testing.T) {
	totals := Aggregate(payments(), 15000, ByMemberGroup("m1", "g1"))
	require.Equal(t, 10000.0, totals.TotalPaid)
	require.Equal(t, 5000.0, totals.Outstanding)
	require.Equal(t, 2, totals.PaymentCount)
}

func TestAggregatePerMemberAcrossGroups(t *testing.T) {
	totals := Aggregate(payments(), 0, ByMember("m1"))
	require.Equal(t, 13000.0, totals.TotalPaid)
	require.Equal(t, 3, totals.PaymentCount)
}

func TestAggregateOutstandingClampsAtZero(t *testing.T) {
	totals := Aggregate(payments(), 8000, ByMemberGroup("m1", "g1"))
	require.Equal(t, 0.0, totals.Outstanding)
}

func TestAggregateIdempotent(t *testing.T) {
	snapshot := payments()
	first := Aggregate(snapshot, 15000, ByMemberGroup("m1", "g1"))
	second := Aggregate(snapshot, 15000, ByMemberGroup("m1", "g1"))
	require.Equal(t, first, second)
}

func TestAggregateEmptySet(t *testing.T) {
	totals := Aggregate(nil, 5000, ByMember("m9"))
	require.Equal(t, 0.0, totals.TotalPaid)
	require.Equal(t, 5000.0, totals.Outstanding)
	require.Equal(t, 0, totals.PaymentCount)
}
