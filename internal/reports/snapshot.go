package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/smk-chits/smk-chits/internal/chit"
)

// StorePort lists whole collections for snapshot assembly. Reports never
// mutate; everything is computed from one consistent read.
type StorePort interface {
	AllMembers(ctx context.Context) ([]chit.Member, error)
	AllGroups(ctx context.Context) ([]chit.Group, error)
	AllTickets(ctx context.Context) ([]chit.Ticket, error)
	AllPayments(ctx context.Context) ([]chit.Payment, error)
	AllAuctions(ctx context.Context) ([]chit.Auction, error)
}

// LoadSnapshot fetches all five collections in parallel.
func LoadSnapshot(ctx context.Context, store StorePort) (chit.Snapshot, error) {
	var snapshot chit.Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot.Members, err = store.AllMembers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Groups, err = store.AllGroups(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Tickets, err = store.AllTickets(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Payments, err = store.AllPayments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Auctions, err = store.AllAuctions(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return chit.Snapshot{}, err
	}
	return snapshot, nil
}
