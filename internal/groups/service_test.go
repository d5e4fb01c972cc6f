package groups

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

type memoryGroupRepo struct {
	groups map[string]chit.Group
}

func newMemoryGroupRepo() *memoryGroupRepo {
	return &memoryGroupRepo{groups: make(map[string]chit.Group)}
}

func (r *memoryGroupRepo) Insert(ctx context.Context, g chit.Group) error {
	r.groups[g.ID] = g
	return nil
}

func (r *memoryGroupRepo) Update(ctx context.Context, g chit.Group) error {
	if _, ok := r.groups[g.ID]; !ok {
		return shared.ErrNotFound
	}
	r.groups[g.ID] = g
	return nil
}

func (r *memoryGroupRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.groups[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *memoryGroupRepo) Get(ctx context.Context, id string) (chit.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return chit.Group{}, shared.ErrNotFound
	}
	return g, nil
}

func (r *memoryGroupRepo) List(ctx context.Context, filters ListFilters) ([]chit.Group, error) {
	var out []chit.Group
	for _, g := range r.groups {
		if filters.Status != "" && g.Status != filters.Status {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func groupInput() CreateGroupInput {
	return CreateGroupInput{
		Name:               "Silver 1L",
		ChitValue:          100000,
		MonthlyInstallment: 5000,
		MemberCount:        20,
		DurationMonths:     20,
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AuctionDay:         5,
		CommissionPercent:  5,
	}
}

func TestCreateGroupStartsUpcoming(t *testing.T) {
	svc := NewService(newMemoryGroupRepo())
	g, err := svc.Create(context.Background(), groupInput())
	require.NoError(t, err)
	require.Equal(t, chit.GroupUpcoming, g.Status)
	require.NotEmpty(t, g.ID)
}

func TestTransitionForwardOnly(t *testing.T) {
	svc := NewService(newMemoryGroupRepo())
	g, err := svc.Create(context.Background(), groupInput())
	require.NoError(t, err)

	g, err = svc.Transition(context.Background(), g.ID, chit.GroupActive)
	require.NoError(t, err)
	require.Equal(t, chit.GroupActive, g.Status)

	g, err = svc.Transition(context.Background(), g.ID, chit.GroupCompleted)
	require.NoError(t, err)
	require.Equal(t, chit.GroupCompleted, g.Status)
}

func TestTransitionRejectsSkipsAndRegressions(t *testing.T) {
	svc := NewService(newMemoryGroupRepo())
	g, err := svc.Create(context.Background(), groupInput())
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), g.ID, chit.GroupCompleted)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	_, err = svc.Transition(context.Background(), g.ID, chit.GroupActive)
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), g.ID, chit.GroupUpcoming)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}
