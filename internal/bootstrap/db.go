package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/renoquote/quote-backend/config"
	"github.com/renoquote/quote-backend/internal/storage/postgres"
)

// OpenDB connects to Postgres and applies pending schema migrations.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	return db, nil
}
