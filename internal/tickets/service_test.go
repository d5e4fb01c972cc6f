package tickets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

type memoryTicketRepo struct {
	tickets map[string]chit.Ticket
}

func newMemoryTicketRepo() *memoryTicketRepo {
	return &memoryTicketRepo{tickets: make(map[string]chit.Ticket)}
}

func (r *memoryTicketRepo) Insert(ctx context.Context, t chit.Ticket) error {
	r.tickets[t.ID] = t
	return nil
}

func (r *memoryTicketRepo) UpdateStatus(ctx context.Context, id string, status chit.TicketStatus) error {
	t, ok := r.tickets[id]
	if !ok {
		return shared.ErrNotFound
	}
	t.Status = status
	r.tickets[id] = t
	return nil
}

func (r *memoryTicketRepo) Get(ctx context.Context, id string) (chit.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return chit.Ticket{}, shared.ErrNotFound
	}
	return t, nil
}

func (r *memoryTicketRepo) List(ctx context.Context, filters ListFilters) ([]chit.Ticket, error) {
	var out []chit.Ticket
	for _, t := range r.tickets {
		if filters.MemberID != "" && t.MemberID != filters.MemberID {
			continue
		}
		if filters.GroupID != "" && t.GroupID != filters.GroupID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memoryTicketRepo) NextTicketNumber(ctx context.Context, groupID string) (int, error) {
	max := 0
	for _, t := range r.tickets {
		if t.GroupID == groupID && t.TicketNumber > max {
			max = t.TicketNumber
		}
	}
	return max + 1, nil
}

func TestEnrollAssignsSequentialNumbers(t *testing.T) {
	svc := NewService(newMemoryTicketRepo())

	first, err := svc.Enroll(context.Background(), EnrollInput{MemberID: "m1", GroupID: "g1"})
	require.NoError(t, err)
	second, err := svc.Enroll(context.Background(), EnrollInput{MemberID: "m2", GroupID: "g1"})
	require.NoError(t, err)
	other, err := svc.Enroll(context.Background(), EnrollInput{MemberID: "m1", GroupID: "g2"})
	require.NoError(t, err)

	require.Equal(t, 1, first.TicketNumber)
	require.Equal(t, 2, second.TicketNumber)
	require.Equal(t, 1, other.TicketNumber)
	require.Equal(t, chit.TicketActive, first.Status)
}

func TestSetStatusOnlyFromActive(t *testing.T) {
	svc := NewService(newMemoryTicketRepo())
	ticket, err := svc.Enroll(context.Background(), EnrollInput{MemberID: "m1", GroupID: "g1"})
	require.NoError(t, err)

	won, err := svc.SetStatus(context.Background(), ticket.ID, chit.TicketWon)
	require.NoError(t, err)
	require.Equal(t, chit.TicketWon, won.Status)

	_, err = svc.SetStatus(context.Background(), ticket.ID, chit.TicketDefaulted)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestSetStatusRejectsActiveTarget(t *testing.T) {
	svc := NewService(newMemoryTicketRepo())
	ticket, err := svc.Enroll(context.Background(), EnrollInput{MemberID: "m1", GroupID: "g1"})
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), ticket.ID, chit.TicketActive)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}
