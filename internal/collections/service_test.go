package collections

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

type memoryPaymentRepo struct {
	payments      map[string]chit.Payment
	conflictsLeft int
}

func newMemoryPaymentRepo() *memoryPaymentRepo {
	return &memoryPaymentRepo{payments: make(map[string]chit.Payment)}
}

func (r *memoryPaymentRepo) Insert(ctx context.Context, p chit.Payment) error {
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return shared.ErrConflict
	}
	r.payments[p.ID] = p
	return nil
}

func (r *memoryPaymentRepo) Get(ctx context.Context, id string) (chit.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return chit.Payment{}, shared.ErrNotFound
	}
	return p, nil
}

func (r *memoryPaymentRepo) List(ctx context.Context, filters ListFilters) ([]chit.Payment, error) {
	var out []chit.Payment
	for _, p := range r.payments {
		if filters.MemberID != "" && p.MemberID != filters.MemberID {
			continue
		}
		if filters.GroupID != "" && p.GroupID != filters.GroupID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeMemberPort struct {
	members map[string]chit.Member
}

func (f *fakeMemberPort) Get(ctx context.Context, id string) (chit.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return chit.Member{}, shared.ErrNotFound
	}
	return m, nil
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

type fakeSettingsPort struct {
	settings chit.Settings
}

func (f *fakeSettingsPort) Get(ctx context.Context) (chit.Settings, error) {
	return f.settings, nil
}

func newPaymentFixture() (*Service, *memoryPaymentRepo) {
	repo := newMemoryPaymentRepo()
	members := &fakeMemberPort{members: map[string]chit.Member{
		"m1": {ID: "m1", Name: "Ravi Kumar", Phone: "9876543210"},
	}}
	groups := &fakeGroupPort{groups: map[string]chit.Group{
		"g1": {ID: "g1", Name: "Lakshmi 1L", ChitValue: 100000, MonthlyInstallment: 5000},
	}}
	settings := &fakeSettingsPort{settings: chit.Settings{BusinessName: "SMK Chits"}}
	return NewService(repo, members, groups, settings), repo
}

func validInput() CreatePaymentInput {
	return CreatePaymentInput{
		MemberID:       "m1",
		GroupID:        "g1",
		AuctionMonth:   2,
		Amount:         5000,
		PaymentDate:    time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		CollectionType: "monthly",
	}
}

func TestCreateAssignsReceiptNumber(t *testing.T) {
	svc, repo := newPaymentFixture()

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p.ReceiptNumber, "SMK-"))
	require.Len(t, repo.payments, 1)
}

func TestCreateRetriesOnReceiptCollision(t *testing.T) {
	svc, repo := newPaymentFixture()
	repo.conflictsLeft = 2

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, p.ReceiptNumber)
	require.Len(t, repo.payments, 1)
}

func TestCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, repo := newPaymentFixture()
	repo.conflictsLeft = 10

	_, err := svc.Create(context.Background(), validInput())
	require.ErrorIs(t, err, shared.ErrConflict)
	require.Empty(t, repo.payments)
}

func TestCreateRejectsUnknownMember(t *testing.T) {
	svc, _ := newPaymentFixture()
	input := validInput()
	input.MemberID = "missing"

	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestReceiptBundlesNames(t *testing.T) {
	svc, _ := newPaymentFixture()
	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	data, err := svc.Receipt(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, "Ravi Kumar", data.Member.Name)
	require.Equal(t, "Lakshmi 1L", data.Group.Name)
	require.Equal(t, "SMK Chits", data.Settings.BusinessName)
}

func TestExportRowsResolveNames(t *testing.T) {
	svc, _ := newPaymentFixture()
	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	rows, err := svc.ExportRows(context.Background(), ListFilters{GroupID: "g1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ravi Kumar", rows[0].MemberName)
	require.Equal(t, "Lakshmi 1L", rows[0].GroupName)
	require.Equal(t, 5000.0, rows[0].Amount)
}
