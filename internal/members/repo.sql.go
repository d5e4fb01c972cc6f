package members

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

const memberColumns = `id, name, name_te, phone, address, id_proof, guarantor_name, guarantor_phone, created_at, updated_at`

func scanMember(row pgx.Row) (chit.Member, error) {
	var m chit.Member
	err := row.Scan(&m.ID, &m.Name, &m.NameTE, &m.Phone, &m.Address, &m.IDProof, &m.GuarantorName, &m.GuarantorPhone, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Insert persists a new member.
func (r *Repository) Insert(ctx context.Context, m chit.Member) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO members (id, name, name_te, phone, address, id_proof, guarantor_name, guarantor_phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Name, m.NameTE, m.Phone, m.Address, m.IDProof, m.GuarantorName, m.GuarantorPhone, m.CreatedAt, m.UpdatedAt)
	return err
}

// Update rewrites an existing member.
func (r *Repository) Update(ctx context.Context, m chit.Member) error {
	tag, err := r.pool.Exec(ctx, `UPDATE members SET name = $2, name_te = $3, phone = $4, address = $5, id_proof = $6, guarantor_name = $7, guarantor_phone = $8, updated_at = $9 WHERE id = $1`,
		m.ID, m.Name, m.NameTE, m.Phone, m.Address, m.IDProof, m.GuarantorName, m.GuarantorPhone, m.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a member. Members still referenced by tickets or
// payments surface as shared.ErrConflict.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return deleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func deleteError(err error) error {
	if shared.PgErrorCode(err) == shared.PgForeignKeyViolation {
		return shared.ErrConflict
	}
	return err
}

// Get fetches one member by id.
func (r *Repository) Get(ctx context.Context, id string) (chit.Member, error) {
	m, err := scanMember(r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Member{}, shared.ErrNotFound
	}
	return m, err
}

// List fetches members, optionally matching a name/phone search.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]chit.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	args := []any{}
	if filters.Search != "" {
		query += ` WHERE name ILIKE $1 OR name_te ILIKE $1 OR phone ILIKE $1`
		args = append(args, "%"+filters.Search+"%")
	}
	query += fmt.Sprintf(` ORDER BY name LIMIT %d`, filters.Limit)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []chit.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
