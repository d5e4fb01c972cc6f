package groups

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/shared"
)

func TestDeleteErrorMapsForeignKeyViolation(t *testing.T) {
	err := deleteError(&pgconn.PgError{Code: "23503", ConstraintName: "tickets_group_id_fkey"})
	require.ErrorIs(t, err, shared.ErrConflict)

	wrapped := fmt.Errorf("delete group: %w", &pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, deleteError(wrapped), shared.ErrConflict)
}

func TestDeleteErrorPassesThroughOtherErrors(t *testing.T) {
	require.NoError(t, deleteError(nil))

	plain := fmt.Errorf("connection reset")
	require.Equal(t, plain, deleteError(plain))
}
