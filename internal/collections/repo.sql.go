package collections

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Repository provides PostgreSQL backed persistence for payments.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const paymentColumns = `id, ticket_id, member_id, group_id, auction_month, amount, payment_date, collection_type, receipt_number, notes, created_at`

func scanPayment(row pgx.Row) (chit.Payment, error) {
	var p chit.Payment
	err := row.Scan(&p.ID, &p.TicketID, &p.MemberID, &p.GroupID, &p.AuctionMonth, &p.Amount, &p.PaymentDate, &p.CollectionType, &p.ReceiptNumber, &p.Notes, &p.CreatedAt)
	return p, err
}

// Insert persists a payment. A duplicate receipt number surfaces as
// shared.ErrConflict so the caller can retry with a fresh one.
func (r *Repository) Insert(ctx context.Context, p chit.Payment) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO payments (id, ticket_id, member_id, group_id, auction_month, amount, payment_date, collection_type, receipt_number, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.TicketID, p.MemberID, p.GroupID, p.AuctionMonth, p.Amount, p.PaymentDate, p.CollectionType, p.ReceiptNumber, p.Notes, p.CreatedAt)
	return insertError(err)
}

func insertError(err error) error {
	if shared.PgErrorCode(err) == shared.PgUniqueViolation {
		return shared.ErrConflict
	}
	return err
}

// Get fetches one payment by id.
func (r *Repository) Get(ctx context.Context, id string) (chit.Payment, error) {
	p, err := scanPayment(r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Payment{}, shared.ErrNotFound
	}
	return p, err
}

// List fetches payments matching the filters, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]chit.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []any{}
	idx := 1
	if filters.MemberID != "" {
		query += fmt.Sprintf(" AND member_id = $%d", idx)
		args = append(args, filters.MemberID)
		idx++
	}
	if filters.GroupID != "" {
		query += fmt.Sprintf(" AND group_id = $%d", idx)
		args = append(args, filters.GroupID)
		idx++
	}
	if !filters.From.IsZero() {
		query += fmt.Sprintf(" AND payment_date >= $%d", idx)
		args = append(args, filters.From)
		idx++
	}
	if !filters.To.IsZero() {
		query += fmt.Sprintf(" AND payment_date <= $%d", idx)
		args = append(args, filters.To)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY payment_date DESC, created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var payments []chit.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
