package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Repository stores the single settings row under a fixed key.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const settingsKey = "app"

// Get fetches the settings row.
func (r *Repository) Get(ctx context.Context) (chit.Settings, error) {
	var s chit.Settings
	err := r.pool.QueryRow(ctx, `SELECT whatsapp_template_en, whatsapp_template_te, default_commission, business_name, business_phone, business_address, updated_at
FROM settings WHERE key = $1`, settingsKey).
		Scan(&s.WhatsAppTemplateEN, &s.WhatsAppTemplateTE, &s.DefaultCommission, &s.BusinessName, &s.BusinessPhone, &s.BusinessAddress, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return chit.Settings{}, shared.ErrNotFound
	}
	return s, err
}

// Upsert writes the settings row, creating it on first save.
func (r *Repository) Upsert(ctx context.Context, s chit.Settings) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO settings (key, whatsapp_template_en, whatsapp_template_te, default_commission, business_name, business_phone, business_address, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (key) DO UPDATE SET
  whatsapp_template_en = EXCLUDED.whatsapp_template_en,
  whatsapp_template_te = EXCLUDED.whatsapp_template_te,
  default_commission = EXCLUDED.default_commission,
  business_name = EXCLUDED.business_name,
  business_phone = EXCLUDED.business_phone,
  business_address = EXCLUDED.business_address,
  updated_at = EXCLUDED.updated_at`,
		settingsKey, s.WhatsAppTemplateEN, s.WhatsAppTemplateTE, s.DefaultCommission, s.BusinessName, s.BusinessPhone, s.BusinessAddress, s.UpdatedAt)
	return err
}
