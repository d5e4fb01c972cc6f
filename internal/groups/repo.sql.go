package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const groupColumns = `id, name, chit_value, monthly_installment, member_count, duration_months, start_date, auction_day, commission_percent, status, created_at, updated_at`

func scanGroup(row pgx.Row) (chit.Group, error) {
	var g chit.Group
	err := row.Scan(&g.ID, &g.Name, &g.ChitValue, &g.MonthlyInstallment, &g.MemberCount, &g.DurationMonths, &g.StartDate, &g.AuctionDay, &g.CommissionPercent, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// Insert persists a new group.
func (r *Repository) Insert(ctx context.Context, g chit.Group) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO chit_groups (id, name, chit_value, monthly_installment, member_count, duration_months, start_date, auction_day, commission_percent, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		g.ID, g.Name, g.ChitValue, g.MonthlyInstallment, g.MemberCount, g.DurationMonths, g.StartDate, g.AuctionDay, g.CommissionPercent, g.Status, g.CreatedAt, g.UpdatedAt)
	return err
}

// Update rewrites an existing group.
func (r *Repository) Update(ctx context.Context, g chit.Group) error {
	tag, err := r.pool.Exec(ctx, `UPDATE chit_groups SET name = $2, chit_value = $3, monthly_installment = $4, member_count = $5, duration_months = $6, start_date = $7, auction_day = $8, commission_percent = $9, status = $10, updated_at = $11 WHERE id = $1`,
		g.ID, g.Name, g.ChitValue, g.MonthlyInstallment, g.MemberCount, g.DurationMonths, g.StartDate, g.AuctionDay, g.CommissionPercent, g.Status, g.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a group. Groups still referenced by tickets, auctions
// or payments surface as shared.ErrConflict.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM chit_groups WHERE id = $1`, id)
	if err != nil {
		return deleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Get fetches one group by id.
func (r *Repository) Get(ctx context.Context, id string) (chit.Group, error) {
	g, err := scanGroup(r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM chit_groups WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Group{}, shared.ErrNotFound
	}
	return g, err
}

// List fetches groups, optionally filtered by status.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]chit.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM chit_groups`
	args := []any{}
	if filters.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filters.Status)
	}
	query += fmt.Sprintf(` ORDER BY start_date DESC LIMIT %d`, filters.Limit)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var groups []chit.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func deleteError(err error) error {
	if shared.PgErrorCode(err) == shared.PgForeignKeyViolation {
		return shared.ErrConflict
	}
	return err
}
