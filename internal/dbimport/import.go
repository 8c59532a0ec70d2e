package dbimport

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImportPortfolio upserts every row of the portfolio CSV into Postgres,
// stamping the whole batch with a fresh import run ID.
func ImportPortfolio() error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("missing required DATABASE_URL environment variable")
	}

	rows, err := portfolio.ReadPortfolio(cfg.PortfolioFile)
	if err != nil {
		return fmt.Errorf("reading portfolio: %w", err)
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	runID := uuid.New()
	if _, err := db.Exec(ctx,
		`INSERT INTO import_runs (id, started_at) VALUES ($1, $2)`,
		runID, time.Now()); err != nil {
		return fmt.Errorf("recording import run: %w", err)
	}

	count := 0
	skipped := 0
	for _, row := range rows {
		if row.CardID == "" || row.Index == "" {
			skipped++
			continue
		}

		_, err := db.Exec(ctx, `
			INSERT INTO portfolio_cards (
				card_id, card_name, set_id, card_number, binder_name,
				page_number, slot_number, set_name, card_market_value,
				location_index, import_run_id, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
			)
			ON CONFLICT (card_id, location_index) DO UPDATE SET
				card_name = EXCLUDED.card_name,
				set_id = EXCLUDED.set_id,
				card_number = EXCLUDED.card_number,
				binder_name = EXCLUDED.binder_name,
				page_number = EXCLUDED.page_number,
				slot_number = EXCLUDED.slot_number,
				set_name = EXCLUDED.set_name,
				card_market_value = EXCLUDED.card_market_value,
				import_run_id = EXCLUDED.import_run_id,
				updated_at = NOW()
		`, row.CardID, row.CardName, row.SetID, row.CardNumber, row.BinderName,
			row.PageNumber, row.SlotNumber, row.SetName, row.MarketValue,
			row.Index, runID)
		if err != nil {
			fmt.Printf("Error inserting card %s: %v\n", row.CardID, err)
			continue
		}
		count++
		if count%100 == 0 {
			fmt.Printf("Processed %d cards...\n", count)
		}
	}

	if _, err := db.Exec(ctx,
		`UPDATE import_runs SET row_count = $1 WHERE id = $2`,
		count, runID); err != nil {
		return fmt.Errorf("finalizing import run: %w", err)
	}

	fmt.Printf("Import complete. Successfully imported %d cards. Skipped %d invalid rows.\n", count, skipped)
	return nil
}
