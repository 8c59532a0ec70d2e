package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/tcgio"
)

func main() {
	cfg := config.Load()

	fmt.Print("Enter a set ID to fetch (e.g. base1): ")
	setID, err := tcgio.ReadSetID(os.Stdin)
	if err != nil {
		if errors.Is(err, tcgio.ErrEmptySetID) {
			fmt.Fprintln(os.Stderr, "Error: no set ID provided.")
			os.Exit(1)
		}
		log.Fatalf("reading set ID: %v", err)
	}

	fetcher := tcgio.NewFetcher(cfg.TCGAPIURL, cfg.TCGPageSize)
	if err := fetcher.FetchIntoDir(setID, cfg.LookupDir); err != nil {
		log.Fatalf("fetch_set failed: %v", err)
	}
	fmt.Printf("Saved set %s to %s\n", setID, cfg.LookupDir)
}
