package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

type memoryMemberRepo struct {
	members map[string]chit.Member
}

func newMemoryMemberRepo() *memoryMemberRepo {
	return &memoryMemberRepo{members: make(map[string]chit.Member)}
}

func (r *memoryMemberRepo) Insert(ctx context.Context, m chit.Member) error {
	r.members[m.ID] = m
	return nil
}

func (r *memoryMemberRepo) Update(ctx context.Context, m chit.Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return shared.ErrNotFound
	}
	r.members[m.ID] = m
	return nil
}

func (r *memoryMemberRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.members[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *memoryMemberRepo) Get(ctx context.Context, id string) (chit.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return chit.Member{}, shared.ErrNotFound
	}
	return m, nil
}

func (r *memoryMemberRepo) List(ctx context.Context, filters ListFilters) ([]chit.Member, error) {
	var out []chit.Member
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func TestCreateMemberAssignsIDAndTimestamps(t *testing.T) {
	svc := NewService(newMemoryMemberRepo())

	m, err := svc.Create(context.Background(), CreateMemberInput{Name: "Lakshmi", Phone: "9876543210"})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.False(t, m.CreatedAt.IsZero())
	require.Equal(t, m.CreatedAt, m.UpdatedAt)
}

func TestUpdateMemberPreservesIdentity(t *testing.T) {
	repo := newMemoryMemberRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), CreateMemberInput{Name: "Lakshmi", Phone: "9876543210"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateMemberInput{Name: "Lakshmi Devi", Phone: "9876543210"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Lakshmi Devi", updated.Name)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingMember(t *testing.T) {
	svc := NewService(newMemoryMemberRepo())
	_, err := svc.Update(context.Background(), "missing", UpdateMemberInput{Name: "X", Phone: "0000000000"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}
