package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect opens a Postgres pool sized for the read API.
func Connect(url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("missing required DATABASE_URL environment variable")
	}
	pool, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	pool.SetMaxOpenConns(5)
	pool.SetMaxIdleConns(5)
	return pool, nil
}
