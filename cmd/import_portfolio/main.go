package main

import (
	"log"

	"github.com/admin/pokemon-card-portfolio/internal/dbimport"
)

func main() {
	if err := dbimport.ImportPortfolio(); err != nil {
		log.Fatalf("import_portfolio failed: %v", err)
	}
}
