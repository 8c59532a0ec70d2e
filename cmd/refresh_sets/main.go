package main

import (
	"log"
	"os"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/tcgio"
)

func main() {
	cfg := config.Load()
	fetcher := tcgio.NewFetcher(cfg.TCGAPIURL, cfg.TCGPageSize)
	if err := fetcher.RefreshAll(cfg.LookupDir, os.Stdout); err != nil {
		log.Fatalf("refresh_sets failed: %v", err)
	}
}
