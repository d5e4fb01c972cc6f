package chit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func classifierSnapshot() Snapshot {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return Snapshot{
		Members: []Member{
			{ID: "m1", Name: "Lakshmi", Phone: "9876543210"},
			{ID: "m2", Name: "Ravi", Phone: "9876500000"},
			{ID: "m3", Name: "Suresh", Phone: "9876511111"},
		},
		Groups: []Group{
			{ID: "g1", Name: "Silver 1L", ChitValue: 100000, MonthlyInstallment: 5000, MemberCount: 20, DurationMonths: 20, StartDate: start, Status: GroupActive},
			{ID: "g2", Name: "Closed", ChitValue: 50000, MonthlyInstallment: 2500, MemberCount: 20, DurationMonths: 20, StartDate: start, Status: GroupCompleted},
		},
		Tickets: []Ticket{
			{ID: "t1", MemberID: "m1", GroupID: "g1", TicketNumber: 1, Status: TicketActive},
			{ID: "t2", MemberID: "m2", GroupID: "g1", TicketNumber: 2, Status: TicketActive},
			{ID: "t3", MemberID: "m3", GroupID: "g1", TicketNumber: 3, Status: TicketWon},
			{ID: "t4", MemberID: "m1", GroupID: "g2", TicketNumber: 4, Status: TicketActive},
		},
		Payments: []Payment{
			{ID: "p1", MemberID: "m1", GroupID: "g1", Amount: 30000},
			{ID: "p2", MemberID: "m2", GroupID: "g1", Amount: 50000},
		},
	}
}

func TestClassifyIncludesOnlyArrears(t *testing.T) {
	s := classifierSnapshot()
	// Ten 30-day buckets elapsed: expected 50000 per active ticket.
	asOf := s.Groups[0].StartDate.Add(10 * 30 * 24 * time.Hour)

	report := Classify(s, asOf)
	require.Len(t, report.Entries, 1)
	entry := report.Entries[0]
	require.Equal(t, "m1", entry.Member.ID)
	require.Equal(t, 30000.0, entry.TotalPaid)
	require.Equal(t, 50000.0, entry.ExpectedTotal)
	require.Equal(t, 20000.0, entry.Outstanding)
	require.Zero(t, report.Dropped)
}

func TestClassifySkipsWonTicketsAndInactiveGroups(t *testing.T) {
	s := classifierSnapshot()
	asOf := s.Groups[0].StartDate.Add(10 * 30 * 24 * time.Hour)

	report := Classify(s, asOf)
	for _, e := range report.Entries {
		require.Equal(t, TicketActive, e.Ticket.Status)
		require.Equal(t, GroupActive, e.Group.Status)
	}
}

func TestClassifyCountsDanglingReferences(t *testing.T) {
	s := classifierSnapshot()
	s.Tickets = append(s.Tickets, Ticket{ID: "t9", MemberID: "gone", GroupID: "g1", TicketNumber: 9, Status: TicketActive})
	asOf := s.Groups[0].StartDate.Add(10 * 30 * 24 * time.Hour)

	report := Classify(s, asOf)
	require.Equal(t, 1, report.Dropped)
	for _, e := range report.Entries {
		require.NotEqual(t, "t9", e.Ticket.ID)
	}
}

func TestClassifyDeterministicOrder(t *testing.T) {
	s := classifierSnapshot()
	// Remove payments so both active g1 tickets are equally in arrears.
	s.Payments = nil
	asOf := s.Groups[0].StartDate.Add(10 * 30 * 24 * time.Hour)

	report := Classify(s, asOf)
	require.Len(t, report.Entries, 2)
	// Same outstanding amount: ordered by member name.
	require.Equal(t, "Lakshmi", report.Entries[0].Member.Name)
	require.Equal(t, "Ravi", report.Entries[1].Member.Name)

	again := Classify(s, asOf)
	require.Equal(t, report, again)
}

func TestClassifyBeforeGroupStart(t *testing.T) {
	s := classifierSnapshot()
	report := Classify(s, s.Groups[0].StartDate)
	require.Empty(t, report.Entries)
}
