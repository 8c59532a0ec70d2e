package main

import (
	"log"
	"net/http"

	"github.com/admin/pokemon-card-portfolio/internal/api"
	"github.com/admin/pokemon-card-portfolio/internal/config"
	"github.com/admin/pokemon-card-portfolio/internal/db"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("server failed: %v", err)
	}
	router := api.NewRouter(database)
	log.Printf("listening on %s", cfg.ServerAddress)
	log.Fatal(http.ListenAndServe(cfg.ServerAddress, router))
}
