package chit

import (
	"sort"
	"time"
)

// DefaulterEntry describes one active ticket currently in arrears.
type DefaulterEntry struct {
	Member        Member  `json:"member"`
	Group         Group   `json:"group"`
	Ticket        Ticket  `json:"ticket"`
	TotalPaid     float64 `json:"total_paid"`
	ExpectedTotal float64 `json:"expected_total"`
	Outstanding   float64 `json:"outstanding"`
}

// DefaulterReport is the classifier output. Dropped counts active tickets
// whose member or group no longer exists; they are excluded from Entries so
// callers can decide whether to surface a data-integrity warning.
type DefaulterReport struct {
	Entries []DefaulterEntry `json:"entries"`
	Dropped int              `json:"dropped"`
}

// Classify produces the arrears list for asOf. Only active tickets in active
// groups are considered; won and defaulted tickets are out of scope
// regardless of balance. Entries are sorted by outstanding descending, then
// member name, then ticket number, so reporting and bulk-reminder dispatch
// order are reproducible.
func Classify(s Snapshot, asOf time.Time) DefaulterReport {
	activeGroups := s.ActiveGroupIDs()

	var report DefaulterReport
	for _, ticket := range s.Tickets {
		if ticket.Status != TicketActive || !activeGroups[ticket.GroupID] {
			continue
		}
		member, ok := s.MemberByID(ticket.MemberID)
		if !ok {
			report.Dropped++
			continue
		}
		group, ok := s.GroupByID(ticket.GroupID)
		if !ok {
			report.Dropped++
			continue
		}
		expected := ExpectedTotal(group, asOf)
		totals := Aggregate(s.Payments, expected, ByMemberGroup(ticket.MemberID, ticket.GroupID))
		if totals.Outstanding <= 0 {
			continue
		}
		report.Entries = append(report.Entries, DefaulterEntry{
			Member:        member,
			Group:         group,
			Ticket:        ticket,
			TotalPaid:     totals.TotalPaid,
			ExpectedTotal: expected,
			Outstanding:   totals.Outstanding,
		})
	}

	sort.Slice(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i], report.Entries[j]
		if a.Outstanding != b.Outstanding {
			return a.Outstanding > b.Outstanding
		}
		if a.Member.Name != b.Member.Name {
			return a.Member.Name < b.Member.Name
		}
		return a.Ticket.TicketNumber < b.Ticket.TicketNumber
	})
	return report
}
