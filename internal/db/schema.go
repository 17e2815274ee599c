package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer es lo mínimo que necesita EnsureSchema; *pgxpool.Pool lo cumple.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Sentencias idempotentes: no hay framework de migraciones, solo una tabla.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name        text NOT NULL,
		description text NOT NULL DEFAULT '',
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS ix_items_created_at ON items (created_at DESC);`,
}

// EnsureSchema garantiza que la tabla items exista antes de servir tráfico.
func EnsureSchema(ctx context.Context, database Execer) error {
	for _, statement := range schemaStatements {
		if _, err := database.Exec(ctx, statement); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
