package main

import (
	"fmt"
	"log"
	"os"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/portfolio"
	"github.com/admin/pokemon-card-portfolio/internal/summary"
)

func main() {
	cfg := config.Load()

	fmt.Fprintln(os.Stderr, "--- Starting Production Pipeline ---")

	fmt.Fprintln(os.Stderr, "\nStep 1: Updating portfolio...")
	if err := portfolio.Update(cfg.InventoryDir, cfg.LookupDir, cfg.PortfolioFile); err != nil {
		log.Fatalf("pipeline: portfolio update failed: %v", err)
	}

	fmt.Fprintln(os.Stderr, "\nStep 2: Generating summary...")
	if err := summary.Generate(cfg.PortfolioFile, os.Stdout); err != nil {
		log.Fatalf("pipeline: summary failed: %v", err)
	}

	fmt.Fprintln(os.Stderr, "\n--- Production Pipeline Complete ---")
}
