package members

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smk-chits/smk-chits/internal/chit"
)

// RepositoryPort defines data access methods for members.
type RepositoryPort interface {
	Insert(ctx context.Context, m chit.Member) error
	Update(ctx context.Context, m chit.Member) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (chit.Member, error)
	List(ctx context.Context, filters ListFilters) ([]chit.Member, error)
}

// Service handles member business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create registers a new member.
func (s *Service) Create(ctx context.Context, input CreateMemberInput) (chit.Member, error) {
	now := time.Now()
	m := chit.Member{
		ID:             uuid.NewString(),
		Name:           input.Name,
		NameTE:         input.NameTE,
		Phone:          input.Phone,
		Address:        input.Address,
		IDProof:        input.IDProof,
		GuarantorName:  input.GuarantorName,
		GuarantorPhone: input.GuarantorPhone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return chit.Member{}, err
	}
	return m, nil
}

// Update edits an existing member.
func (s *Service) Update(ctx context.Context, id string, input UpdateMemberInput) (chit.Member, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return chit.Member{}, err
	}
	m.Name = input.Name
	m.NameTE = input.NameTE
	m.Phone = input.Phone
	m.Address = input.Address
	m.IDProof = input.IDProof
	m.GuarantorName = input.GuarantorName
	m.GuarantorPhone = input.GuarantorPhone
	m.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, m); err != nil {
		return chit.Member{}, err
	}
	return m, nil
}

// Delete removes a member record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Get returns one member.
func (s *Service) Get(ctx context.Context, id string) (chit.Member, error) {
	return s.repo.Get(ctx, id)
}

// List returns members matching the filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]chit.Member, error) {
	if filters.Limit <= 0 || filters.Limit > 500 {
		filters.Limit = 200
	}
	return s.repo.List(ctx, filters)
}
