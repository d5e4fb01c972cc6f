package auctions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/smk-chits/smk-chits/internal/chit"
)

// RepositoryPort defines data access methods for auctions.
type RepositoryPort interface {
	Insert(ctx context.Context, a chit.Auction) error
	Get(ctx context.Context, id string) (chit.Auction, error)
	List(ctx context.Context, groupID string) ([]chit.Auction, error)
}

// GroupPort resolves the group whose commission governs the settlement.
type GroupPort interface {
	Get(ctx context.Context, id string) (chit.Group, error)
}

// TicketPort resolves and retires the winning ticket.
type TicketPort interface {
	Get(ctx context.Context, id string) (chit.Ticket, error)
	SetStatus(ctx context.Context, id string, status chit.TicketStatus) (chit.Ticket, error)
}

// Service handles auction business logic.
type Service struct {
	repo    RepositoryPort
	groups  GroupPort
	tickets TicketPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, groups GroupPort, tickets TicketPort) *Service {
	return &Service{repo: repo, groups: groups, tickets: tickets}
}

// ErrTicketOutsideGroup indicates the winning ticket belongs to a different group.
var ErrTicketOutsideGroup = errors.New("auctions: winning ticket not in group")

// ErrTicketNotActive indicates the winning ticket already won or defaulted.
var ErrTicketNotActive = errors.New("auctions: winning ticket not active")

// Preview computes the settlement for the current form state. Pure; nothing
// is persisted.
func (s *Service) Preview(ctx context.Context, input PreviewInput) (chit.Settlement, error) {
	group, err := s.groups.Get(ctx, input.GroupID)
	if err != nil {
		return chit.Settlement{}, err
	}
	return chit.Settle(group.ChitValue, input.BidAmount, group.CommissionPercent, group.MemberCount), nil
}

// Record persists an auction. The settlement is computed once from the
// group's commission at this moment; later commission edits never touch it.
// The winning ticket is retired to the won state.
func (s *Service) Record(ctx context.Context, input RecordInput) (chit.Auction, error) {
	group, err := s.groups.Get(ctx, input.GroupID)
	if err != nil {
		return chit.Auction{}, err
	}
	ticket, err := s.tickets.Get(ctx, input.WinnerTicketID)
	if err != nil {
		return chit.Auction{}, err
	}
	if ticket.GroupID != group.ID {
		return chit.Auction{}, ErrTicketOutsideGroup
	}
	if ticket.Status != chit.TicketActive {
		return chit.Auction{}, ErrTicketNotActive
	}

	settlement := chit.Settle(group.ChitValue, input.BidAmount, group.CommissionPercent, group.MemberCount)
	auction := chit.Auction{
		ID:                uuid.NewString(),
		GroupID:           group.ID,
		MonthNumber:       input.MonthNumber,
		WinnerTicketID:    ticket.ID,
		WinnerMemberID:    ticket.MemberID,
		BidAmount:         input.BidAmount,
		Discount:          settlement.Discount,
		ForemanCommission: settlement.ForemanCommission,
		DividendPerMember: settlement.DividendPerMember,
		Date:              input.Date,
		Notes:             input.Notes,
		CreatedAt:         time.Now(),
	}
	if err := s.repo.Insert(ctx, auction); err != nil {
		return chit.Auction{}, err
	}
	if _, err := s.tickets.SetStatus(ctx, ticket.ID, chit.TicketWon); err != nil {
		return chit.Auction{}, err
	}
	return auction, nil
}

// Get returns one auction.
func (s *Service) Get(ctx context.Context, id string) (chit.Auction, error) {
	return s.repo.Get(ctx, id)
}

// List returns auctions, optionally for a single group.
func (s *Service) List(ctx context.Context, groupID string) ([]chit.Auction, error) {
	return s.repo.List(ctx, groupID)
}
