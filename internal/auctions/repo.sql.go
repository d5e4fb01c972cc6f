package auctions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Repository provides PostgreSQL backed persistence. Auctions are append
// only; there is no update or delete path.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const auctionColumns = `id, group_id, month_number, winner_ticket_id, winner_member_id, bid_amount, discount, foreman_commission, dividend_per_member, date, notes, created_at`

func scanAuction(row pgx.Row) (chit.Auction, error) {
	var a chit.Auction
	err := row.Scan(&a.ID, &a.GroupID, &a.MonthNumber, &a.WinnerTicketID, &a.WinnerMemberID, &a.BidAmount, &a.Discount, &a.ForemanCommission, &a.DividendPerMember, &a.Date, &a.Notes, &a.CreatedAt)
	return a, err
}

// Insert persists a new auction.
func (r *Repository) Insert(ctx context.Context, a chit.Auction) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO auctions (id, group_id, month_number, winner_ticket_id, winner_member_id, bid_amount, discount, foreman_commission, dividend_per_member, date, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.GroupID, a.MonthNumber, a.WinnerTicketID, a.WinnerMemberID, a.BidAmount, a.Discount, a.ForemanCommission, a.DividendPerMember, a.Date, a.Notes, a.CreatedAt)
	return err
}

// Get fetches one auction by id.
func (r *Repository) Get(ctx context.Context, id string) (chit.Auction, error) {
	a, err := scanAuction(r.pool.QueryRow(ctx, `SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Auction{}, shared.ErrNotFound
	}
	return a, err
}

// List fetches auctions, optionally for one group, newest month first.
func (r *Repository) List(ctx context.Context, groupID string) ([]chit.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	args := []any{}
	if groupID != "" {
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	}
	query += ` ORDER BY month_number DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var auctions []chit.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}
