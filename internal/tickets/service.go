package tickets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// RepositoryPort defines data access methods for tickets.
type RepositoryPort interface {
	Insert(ctx context.Context, t chit.Ticket) error
	UpdateStatus(ctx context.Context, id string, status chit.TicketStatus) error
	Get(ctx context.Context, id string) (chit.Ticket, error)
	List(ctx context.Context, filters ListFilters) ([]chit.Ticket, error)
	NextTicketNumber(ctx context.Context, groupID string) (int, error)
}

// Service handles ticket business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Enroll creates a ticket with the group's next sequential number. A member
// may hold several tickets, including several in the same group.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) (chit.Ticket, error) {
	number, err := s.repo.NextTicketNumber(ctx, input.GroupID)
	if err != nil {
		return chit.Ticket{}, err
	}
	t := chit.Ticket{
		ID:           uuid.NewString(),
		MemberID:     input.MemberID,
		GroupID:      input.GroupID,
		TicketNumber: number,
		Status:       chit.TicketActive,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return chit.Ticket{}, err
	}
	return t, nil
}

// SetStatus marks a ticket won or defaulted. Tickets never return to the
// active state.
func (s *Service) SetStatus(ctx context.Context, id string, status chit.TicketStatus) (chit.Ticket, error) {
	if status != chit.TicketWon && status != chit.TicketDefaulted {
		return chit.Ticket{}, fmt.Errorf("%w: -> %s", shared.ErrInvalidTransition, status)
	}
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return chit.Ticket{}, err
	}
	if t.Status != chit.TicketActive {
		return chit.Ticket{}, fmt.Errorf("%w: %s -> %s", shared.ErrInvalidTransition, t.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return chit.Ticket{}, err
	}
	t.Status = status
	return t, nil
}

// Get returns one ticket.
func (s *Service) Get(ctx context.Context, id string) (chit.Ticket, error) {
	return s.repo.Get(ctx, id)
}

// List returns tickets matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]chit.Ticket, error) {
	return s.repo.List(ctx, filters)
}
