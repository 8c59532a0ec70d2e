package main

import (
	"log"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/portfolio"
)

func main() {
	cfg := config.Load()
	if err := portfolio.Update(cfg.InventoryDir, cfg.LookupDir, cfg.PortfolioFile); err != nil {
		log.Fatalf("update_portfolio failed: %v", err)
	}
}
