package dbinit

import (
	"context"
	"fmt"

	"github.com/admin/pokemon-card-portfolio/internal/config"

	"github.com/jackc/pgx/v5"
)

const schema = `
CREATE TABLE import_runs (
	id UUID PRIMARY KEY,
	started_at TIMESTAMPTZ NOT NULL,
	row_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE portfolio_cards (
	card_id TEXT NOT NULL,
	card_name TEXT NOT NULL DEFAULT '',
	set_id TEXT NOT NULL DEFAULT '',
	card_number TEXT NOT NULL DEFAULT '',
	binder_name TEXT NOT NULL DEFAULT '',
	page_number TEXT NOT NULL DEFAULT '',
	slot_number TEXT NOT NULL DEFAULT '',
	set_name TEXT NOT NULL DEFAULT '',
	card_market_value NUMERIC(12,2) NOT NULL DEFAULT 0,
	location_index TEXT NOT NULL,
	import_run_id UUID REFERENCES import_runs(id),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (card_id, location_index)
);

CREATE INDEX portfolio_cards_set_id_idx ON portfolio_cards (set_id);
`

func checkTableExists(ctx context.Context, conn *pgx.Conn, tableName string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)`, tableName).Scan(&exists)
	return exists, err
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
		DROP TABLE IF EXISTS portfolio_cards CASCADE;
		DROP TABLE IF EXISTS import_runs CASCADE;
	`)
	return err
}

func Run(forceReset bool) error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("missing required DATABASE_URL environment variable")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	exists, err := checkTableExists(ctx, conn, "portfolio_cards")
	if err != nil {
		return fmt.Errorf("error checking if tables exist: %w", err)
	}

	if exists {
		if !forceReset {
			return fmt.Errorf("tables already exist. Use --force flag to drop and recreate them")
		}
		if err := dropTables(ctx, conn); err != nil {
			return fmt.Errorf("error dropping tables: %w", err)
		}
	}

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to execute schema: %w", err)
	}

	fmt.Println("Database schema initialized successfully!")
	return nil
}
