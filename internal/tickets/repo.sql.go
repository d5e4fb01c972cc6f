package tickets

import (
	"context"
	"errors"

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

const ticketColumns = `id, member_id, group_id, ticket_number, status, created_at`

func scanTicket(row pgx.Row) (chit.Ticket, error) {
	var t chit.Ticket
	err := row.Scan(&t.ID, &t.MemberID, &t.GroupID, &t.TicketNumber, &t.Status, &t.CreatedAt)
	return t, err
}

// Insert persists a new ticket.
func (r *Repository) Insert(ctx context.Context, t chit.Ticket) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO tickets (id, member_id, group_id, ticket_number, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.MemberID, t.GroupID, t.TicketNumber, t.Status, t.CreatedAt)
	return err
}

// UpdateStatus changes a ticket's lifecycle state.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status chit.TicketStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tickets SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Get fetches one ticket by id.
func (r *Repository) Get(ctx context.Context, id string) (chit.Ticket, error) {
	t, err := scanTicket(r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Ticket{}, shared.ErrNotFound
	}
	return t, err
}

// List fetches tickets filtered by member and/or group.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]chit.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE 1=1`
	args := []any{}
	if filters.MemberID != "" {
		args = append(args, filters.MemberID)
		query += ` AND member_id = $1`
	}
	if filters.GroupID != "" {
		args = append(args, filters.GroupID)
		if len(args) == 1 {
			query += ` AND group_id = $1`
		} else {
			query += ` AND group_id = $2`
		}
	}
	query += ` ORDER BY ticket_number`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tickets []chit.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// NextTicketNumber returns the next sequential number within a group.
func (r *Repository) NextTicketNumber(ctx context.Context, groupID string) (int, error) {
	var max int
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(ticket_number), 0) FROM tickets WHERE group_id = $1`, groupID).Scan(&max); err != nil {
		return 0, err
	}
	return max + 1, nil
}
