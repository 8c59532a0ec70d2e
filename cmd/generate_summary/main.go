package main

import (
	"log"
	"os"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/summary"
)

func main() {
	cfg := config.Load()
	if err := summary.Generate(cfg.PortfolioFile, os.Stdout); err != nil {
		log.Fatalf("generate_summary failed: %v", err)
	}
}
