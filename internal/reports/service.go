package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// DefaulterView is the arrears report plus an optional data-integrity
// warning when active tickets reference missing members or groups.
type DefaulterView struct {
	AsOf             time.Time             `json:"as_of"`
	Entries          []chit.DefaulterEntry `json:"entries"`
	TotalOutstanding float64               `json:"total_outstanding"`
	Warning          string                `json:"warning,omitempty"`
}

// TodaysEntry is one active ticket on the collection round, with the
// amount already collected on the report date.
type TodaysEntry struct {
	Member          chit.Member `json:"member"`
	Group           chit.Group  `json:"group"`
	Ticket          chit.Ticket `json:"ticket"`
	ExpectedTotal   float64     `json:"expected_total"`
	TotalPaid       float64     `json:"total_paid"`
	Outstanding     float64     `json:"outstanding"`
	PaidToday       bool        `json:"paid_today"`
	PaidTodayAmount float64     `json:"paid_today_amount"`
}

// TodaysListView is the daily field-collection worksheet.
type TodaysListView struct {
	Date         time.Time     `json:"date"`
	Entries      []TodaysEntry `json:"entries"`
	PaidCount    int           `json:"paid_count"`
	PendingCount int           `json:"pending_count"`
	TodaysTotal  float64       `json:"todays_total"`
	Warning      string        `json:"warning,omitempty"`
}

// LedgerRow is one ticket's standing within a member's ledger. Expected
// covers the group's full duration, so completed groups settle to zero
// outstanding only once fully paid.
type LedgerRow struct {
	Group         chit.Group        `json:"group"`
	TicketNumber  int               `json:"ticket_number"`
	TicketStatus  chit.TicketStatus `json:"ticket_status"`
	ExpectedTotal float64           `json:"expected_total"`
	TotalPaid     float64           `json:"total_paid"`
	Outstanding   float64           `json:"outstanding"`
	PaymentCount  int               `json:"payment_count"`
}

// MemberLedgerView is the per-member statement across all enrollments.
type MemberLedgerView struct {
	Member           chit.Member `json:"member"`
	Rows             []LedgerRow `json:"rows"`
	TotalPaid        float64     `json:"total_paid"`
	TotalOutstanding float64     `json:"total_outstanding"`
}

// DashboardStats is the cached headline view.
type DashboardStats struct {
	MemberCount         int       `json:"member_count"`
	ActiveGroups        int       `json:"active_groups"`
	TotalCollected      float64   `json:"total_collected"`
	TotalCommission     float64   `json:"total_commission"`
	OutstandingEstimate float64   `json:"outstanding_estimate"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// Service computes read-only reports from store snapshots.
type Service struct {
	store StorePort
	cache *Cache
	now   func() time.Time
}

// NewService builds Service instance.
func NewService(store StorePort, cache *Cache) *Service {
	return &Service{store: store, cache: cache, now: time.Now}
}

// Defaulters produces the arrears report for asOf.
func (s *Service) Defaulters(ctx context.Context, asOf time.Time) (DefaulterView, error) {
	snapshot, err := LoadSnapshot(ctx, s.store)
	if err != nil {
		return DefaulterView{}, err
	}
	report := chit.Classify(snapshot, asOf)
	view := DefaulterView{AsOf: asOf, Entries: report.Entries}
	for _, e := range report.Entries {
		view.TotalOutstanding += e.Outstanding
	}
	if report.Dropped > 0 {
		view.Warning = fmt.Sprintf("%d active tickets reference missing members or groups", report.Dropped)
	}
	return view, nil
}

// TodaysList produces the collection round for asOf: every active ticket
// in an active group, with what was collected on that date and what is
// still due. Expected totals floor at one installment so a freshly
// started group already appears on the round.
func (s *Service) TodaysList(ctx context.Context, asOf time.Time) (TodaysListView, error) {
	snapshot, err := LoadSnapshot(ctx, s.store)
	if err != nil {
		return TodaysListView{}, err
	}
	day := asOf.Format("2006-01-02")
	view := TodaysListView{Date: asOf}
	dropped := 0
	for _, ticket := range snapshot.Tickets {
		if ticket.Status != chit.TicketActive {
			continue
		}
		group, ok := snapshot.GroupByID(ticket.GroupID)
		if !ok {
			dropped++
			continue
		}
		if group.Status != chit.GroupActive {
			continue
		}
		member, ok := snapshot.MemberByID(ticket.MemberID)
		if !ok {
			dropped++
			continue
		}
		expected := float64(chit.ExpectedInstallmentsAtLeastOne(group.StartDate, group.DurationMonths, asOf)) * group.MonthlyInstallment
		totals := chit.Aggregate(snapshot.Payments, expected, chit.ByMemberGroup(member.ID, group.ID))
		entry := TodaysEntry{
			Member:        member,
			Group:         group,
			Ticket:        ticket,
			ExpectedTotal: expected,
			TotalPaid:     totals.TotalPaid,
			Outstanding:   totals.Outstanding,
		}
		for _, p := range snapshot.Payments {
			if p.MemberID == member.ID && p.GroupID == group.ID && p.PaymentDate.Format("2006-01-02") == day {
				entry.PaidToday = true
				entry.PaidTodayAmount += p.Amount
			}
		}
		if entry.PaidToday {
			view.PaidCount++
			view.TodaysTotal += entry.PaidTodayAmount
		} else {
			view.PendingCount++
		}
		view.Entries = append(view.Entries, entry)
	}
	sort.Slice(view.Entries, func(i, j int) bool {
		a, b := view.Entries[i], view.Entries[j]
		if a.Member.Name != b.Member.Name {
			return a.Member.Name < b.Member.Name
		}
		return a.Ticket.TicketNumber < b.Ticket.TicketNumber
	})
	if dropped > 0 {
		view.Warning = fmt.Sprintf("%d active tickets reference missing members or groups", dropped)
	}
	return view, nil
}

// MemberLedger produces the statement for one member across all tickets.
func (s *Service) MemberLedger(ctx context.Context, memberID string) (MemberLedgerView, error) {
	snapshot, err := LoadSnapshot(ctx, s.store)
	if err != nil {
		return MemberLedgerView{}, err
	}
	member, ok := snapshot.MemberByID(memberID)
	if !ok {
		return MemberLedgerView{}, shared.ErrNotFound
	}

	view := MemberLedgerView{Member: member}
	for _, ticket := range snapshot.Tickets {
		if ticket.MemberID != memberID {
			continue
		}
		group, ok := snapshot.GroupByID(ticket.GroupID)
		if !ok {
			continue
		}
		expected := chit.FullTotal(group)
		totals := chit.Aggregate(snapshot.Payments, expected, chit.ByMemberGroup(memberID, group.ID))
		view.Rows = append(view.Rows, LedgerRow{
			Group:         group,
			TicketNumber:  ticket.TicketNumber,
			TicketStatus:  ticket.Status,
			ExpectedTotal: expected,
			TotalPaid:     totals.TotalPaid,
			Outstanding:   totals.Outstanding,
			PaymentCount:  totals.PaymentCount,
		})
		view.TotalPaid += totals.TotalPaid
		view.TotalOutstanding += totals.Outstanding
	}
	sort.Slice(view.Rows, func(i, j int) bool {
		a, b := view.Rows[i], view.Rows[j]
		if a.Group.Name != b.Group.Name {
			return a.Group.Name < b.Group.Name
		}
		return a.TicketNumber < b.TicketNumber
	})
	return view, nil
}

// Dashboard returns the headline stats, cached per day under the current
// cache version.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	now := s.now()
	key, err := s.cache.BuildKey(ctx, keyDashboard(now.Format("2006-01-02")))
	if err != nil {
		return DashboardStats{}, err
	}
	var stats DashboardStats
	err = s.cache.FetchJSON(ctx, key, &stats, func(ctx context.Context) (interface{}, error) {
		return s.computeDashboard(ctx, now)
	})
	return stats, err
}

func (s *Service) computeDashboard(ctx context.Context, now time.Time) (DashboardStats, error) {
	snapshot, err := LoadSnapshot(ctx, s.store)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{
		MemberCount: len(snapshot.Members),
		GeneratedAt: now,
	}
	for _, g := range snapshot.Groups {
		if g.Status == chit.GroupActive {
			stats.ActiveGroups++
		}
	}
	for _, p := range snapshot.Payments {
		stats.TotalCollected += p.Amount
	}
	for _, a := range snapshot.Auctions {
		stats.TotalCommission += a.ForemanCommission
	}
	report := chit.Classify(snapshot, now)
	for _, e := range report.Entries {
		stats.OutstandingEstimate += e.Outstanding
	}
	return stats, nil
}

// InvalidateDashboard bumps the cache version so the next dashboard read
// recomputes.
func (s *Service) InvalidateDashboard(ctx context.Context) error {
	return s.cache.Bump(ctx)
}
