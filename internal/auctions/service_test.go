package auctions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

type memoryAuctionRepo struct {
	auctions map[string]chit.Auction
}

func newMemoryAuctionRepo() *memoryAuctionRepo {
	return &memoryAuctionRepo{auctions: make(map[string]chit.Auction)}
}

func (r *memoryAuctionRepo) Insert(ctx context.Context, a chit.Auction) error {
	r.auctions[a.ID] = a
	return nil
}

func (r *memoryAuctionRepo) Get(ctx context.Context, id string) (chit.Auction, error) {
	a, ok := r.auctions[id]
	if !ok {
		return chit.Auction{}, shared.ErrNotFound
	}
	return a, nil
}

func (r *memoryAuctionRepo) List(ctx context.Context, groupID string) ([]chit.Auction, error) {
	var out []chit.Auction
	for _, a := range r.auctions {
		if groupID != "" && a.GroupID != groupID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeGroupPort struct {
	groups map[string]chit.Group
}

func (f *fakeGroupPort) Get(ctx context.Context, id string) (chit.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return chit.Group{}, shared.ErrNotFound
	}
	return g, nil
}

type fakeTicketPort struct {
	tickets map[string]chit.Ticket
}

func (f *fakeTicketPort) Get(ctx context.Context, id string) (chit.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return chit.Ticket{}, shared.ErrNotFound
	}
	return t, nil
}

func (f *fakeTicketPort) SetStatus(ctx context.Context, id string, status chit.TicketStatus) (chit.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return chit.Ticket{}, shared.ErrNotFound
	}
	t.Status = status
	f.tickets[id] = t
	return t, nil
}

func newAuctionFixture() (*Service, *memoryAuctionRepo, *fakeTicketPort) {
	repo := newMemoryAuctionRepo()
	groups := &fakeGroupPort{groups: map[string]chit.Group{
		"g1": {ID: "g1", ChitValue: 100000, CommissionPercent: 5, MemberCount: 20, Status: chit.GroupActive},
	}}
	tickets := &fakeTicketPort{tickets: map[string]chit.Ticket{
		"t1": {ID: "t1", GroupID: "g1", MemberID: "m1", TicketNumber: 1, Status: chit.TicketActive},
		"t2": {ID: "t2", GroupID: "g2", MemberID: "m2", TicketNumber: 1, Status: chit.TicketActive},
		"t3": {ID: "t3", GroupID: "g1", MemberID: "m3", TicketNumber: 3, Status: chit.TicketWon},
	}}
	return NewService(repo, groups, tickets), repo, tickets
}

func TestRecordPersistsSettlementAndRetiresTicket(t *testing.T) {
	svc, repo, tickets := newAuctionFixture()

	auction, err := svc.Record(context.Background(), RecordInput{
		GroupID:        "g1",
		MonthNumber:    3,
		WinnerTicketID: "t1",
		BidAmount:      90000,
		Date:           time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, 10000.0, auction.Discount)
	require.Equal(t, 500.0, auction.ForemanCommission)
	require.Equal(t, 475.0, auction.DividendPerMember)
	require.Equal(t, "m1", auction.WinnerMemberID)

	stored, err := repo.Get(context.Background(), auction.ID)
	require.NoError(t, err)
	require.Equal(t, auction.Discount, stored.Discount)

	winner, err := tickets.Get(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, chit.TicketWon, winner.Status)
}

func TestRecordRejectsTicketFromOtherGroup(t *testing.T) {
	svc, _, _ := newAuctionFixture()

	_, err := svc.Record(context.Background(), RecordInput{
		GroupID:        "g1",
		MonthNumber:    1,
		WinnerTicketID: "t2",
		BidAmount:      90000,
		Date:           time.Now(),
	})
	require.ErrorIs(t, err, ErrTicketOutsideGroup)
}

func TestRecordRejectsRetiredTicket(t *testing.T) {
	svc, _, _ := newAuctionFixture()

	_, err := svc.Record(context.Background(), RecordInput{
		GroupID:        "g1",
		MonthNumber:    4,
		WinnerTicketID: "t3",
		BidAmount:      90000,
		Date:           time.Now(),
	})
	require.ErrorIs(t, err, ErrTicketNotActive)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc, repo, _ := newAuctionFixture()

	settlement, err := svc.Preview(context.Background(), PreviewInput{GroupID: "g1", BidAmount: 0})
	require.NoError(t, err)
	require.Equal(t, 100000.0, settlement.Discount)
	require.Equal(t, 5000.0, settlement.ForemanCommission)
	require.Equal(t, 4750.0, settlement.DividendPerMember)
	require.Empty(t, repo.auctions)
}

func TestRecordUnknownGroup(t *testing.T) {
	svc, _, _ := newAuctionFixture()

	_, err := svc.Record(context.Background(), RecordInput{
		GroupID:        "missing",
		MonthNumber:    1,
		WinnerTicketID: "t1",
		BidAmount:      0,
		Date:           time.Now(),
	})
	require.ErrorIs(t, err, shared.ErrNotFound)
}
