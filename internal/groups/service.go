package groups

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// RepositoryPort defines data access methods for chit groups.
type RepositoryPort interface {
	Insert(ctx context.Context, g chit.Group) error
	Update(ctx context.Context, g chit.Group) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (chit.Group, error)
	List(ctx context.Context, filters ListFilters) ([]chit.Group, error)
}

// Service handles chit group business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create opens a new chit group in the upcoming state.
func (s *Service) Create(ctx context.Context, input CreateGroupInput) (chit.Group, error) {
	now := time.Now()
	g := chit.Group{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		ChitValue:          input.ChitValue,
		MonthlyInstallment: input.MonthlyInstallment,
		MemberCount:        input.MemberCount,
		DurationMonths:     input.DurationMonths,
		StartDate:          input.StartDate,
		AuctionDay:         input.AuctionDay,
		CommissionPercent:  input.CommissionPercent,
		Status:             chit.GroupUpcoming,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Insert(ctx, g); err != nil {
		return chit.Group{}, err
	}
	return g, nil
}

// Update edits an existing group. Past auctions keep the settlement computed
// from the commission in force when they were recorded.
func (s *Service) Update(ctx context.Context, id string, input UpdateGroupInput) (chit.Group, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return chit.Group{}, err
	}
	g.Name = input.Name
	g.ChitValue = input.ChitValue
	g.MonthlyInstallment = input.MonthlyInstallment
	g.MemberCount = input.MemberCount
	g.DurationMonths = input.DurationMonths
	g.StartDate = input.StartDate
	g.AuctionDay = input.AuctionDay
	g.CommissionPercent = input.CommissionPercent
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return chit.Group{}, err
	}
	return g, nil
}

// Transition advances the group lifecycle. Only the forward step is allowed:
// upcoming -> active -> completed, by explicit user action.
func (s *Service) Transition(ctx context.Context, id string, next chit.GroupStatus) (chit.Group, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return chit.Group{}, err
	}
	allowed := map[chit.GroupStatus]chit.GroupStatus{
		chit.GroupUpcoming: chit.GroupActive,
		chit.GroupActive:   chit.GroupCompleted,
	}
	if allowed[g.Status] != next {
		return chit.Group{}, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidTransition, g.Status, next)
	}
	g.Status = next
	g.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, g); err != nil {
		return chit.Group{}, err
	}
	return g, nil
}

// Delete removes a group record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Get returns one group.
func (s *Service) Get(ctx context.Context, id string) (chit.Group, error) {
	return s.repo.Get(ctx, id)
}

// List returns groups matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]chit.Group, error) {
	if filters.Limit <= 0 || filters.Limit > 500 {
		filters.Limit = 200
	}
	return s.repo.List(ctx, filters)
}
