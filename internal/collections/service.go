package collections

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/money"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// RepositoryPort defines data access methods for payments.
type RepositoryPort interface {
	Insert(ctx context.Context, p chit.Payment) error
	Get(ctx context.Context, id string) (chit.Payment, error)
	List(ctx context.Context, filters ListFilters) ([]chit.Payment, error)
}

// MemberPort resolves member records for receipts and exports.
type MemberPort interface {
	Get(ctx context.Context, id string) (chit.Member, error)
}

// GroupPort resolves group records for receipts and exports.
type GroupPort interface {
	Get(ctx context.Context, id string) (chit.Group, error)
}

// SettingsPort supplies the business identity printed on receipts.
type SettingsPort interface {
	Get(ctx context.Context) (chit.Settings, error)
}

// Service handles payment business logic.
type Service struct {
	repo     RepositoryPort
	members  MemberPort
	groups   GroupPort
	settings SettingsPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, members MemberPort, groups GroupPort, settings SettingsPort) *Service {
	return &Service{repo: repo, members: members, groups: groups, settings: settings}
}

const receiptRetries = 3

// Create records a payment and assigns a receipt number. The random
// receipt suffix can collide within a day, so the insert is retried with
// a fresh number a few times before giving up.
func (s *Service) Create(ctx context.Context, input CreatePaymentInput) (chit.Payment, error) {
	if _, err := s.members.Get(ctx, input.MemberID); err != nil {
		return chit.Payment{}, err
	}
	if _, err := s.groups.Get(ctx, input.GroupID); err != nil {
		return chit.Payment{}, err
	}

	now := time.Now()
	p := chit.Payment{
		ID:             uuid.NewString(),
		TicketID:       input.TicketID,
		MemberID:       input.MemberID,
		GroupID:        input.GroupID,
		AuctionMonth:   input.AuctionMonth,
		Amount:         input.Amount,
		PaymentDate:    input.PaymentDate,
		CollectionType: chit.CollectionType(input.CollectionType),
		Notes:          input.Notes,
		CreatedAt:      now,
	}
	var err error
	for attempt := 0; attempt < receiptRetries; attempt++ {
		p.ReceiptNumber = money.ReceiptNumber(now)
		err = s.repo.Insert(ctx, p)
		if !errors.Is(err, shared.ErrConflict) {
			break
		}
	}
	if err != nil {
		return chit.Payment{}, err
	}
	return p, nil
}

// Get returns one payment.
func (s *Service) Get(ctx context.Context, id string) (chit.Payment, error) {
	return s.repo.Get(ctx, id)
}

// List returns payments matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]chit.Payment, error) {
	if filters.Limit <= 0 || filters.Limit > 1000 {
		filters.Limit = 500
	}
	return s.repo.List(ctx, filters)
}

// ReceiptData bundles everything a printed receipt needs.
type ReceiptData struct {
	Payment  chit.Payment
	Member   chit.Member
	Group    chit.Group
	Settings chit.Settings
}

// Receipt loads the payment plus the member, group and business identity
// for rendering.
func (s *Service) Receipt(ctx context.Context, paymentID string) (ReceiptData, error) {
	p, err := s.repo.Get(ctx, paymentID)
	if err != nil {
		return ReceiptData{}, err
	}
	m, err := s.members.Get(ctx, p.MemberID)
	if err != nil {
		return ReceiptData{}, err
	}
	g, err := s.groups.Get(ctx, p.GroupID)
	if err != nil {
		return ReceiptData{}, err
	}
	st, err := s.settings.Get(ctx)
	if err != nil {
		return ReceiptData{}, err
	}
	return ReceiptData{Payment: p, Member: m, Group: g, Settings: st}, nil
}

// ExportRows resolves member and group names for a CSV export. Lookups
// are memoised per call since one day's payments cluster on few groups.
func (s *Service) ExportRows(ctx context.Context, filters ListFilters) ([]ExportRow, error) {
	filters.Limit = 10000
	payments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	memberNames := make(map[string]string)
	groupNames := make(map[string]string)
	rows := make([]ExportRow, 0, len(payments))
	for _, p := range payments {
		name, ok := memberNames[p.MemberID]
		if !ok {
			m, err := s.members.Get(ctx, p.MemberID)
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			name = m.Name
			memberNames[p.MemberID] = name
		}
		groupName, ok := groupNames[p.GroupID]
		if !ok {
			g, err := s.groups.Get(ctx, p.GroupID)
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			groupName = g.Name
			groupNames[p.GroupID] = groupName
		}
		rows = append(rows, ExportRow{
			ReceiptNumber:  p.ReceiptNumber,
			PaymentDate:    p.PaymentDate,
			MemberName:     name,
			GroupName:      groupName,
			Amount:         p.Amount,
			CollectionType: string(p.CollectionType),
			Notes:          p.Notes,
		})
	}
	return rows, nil
}
