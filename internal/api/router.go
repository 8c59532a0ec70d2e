package api

import (
	"database/sql"
	"net/http"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portfolio", listPortfolioHandler(db))
	mux.HandleFunc("GET /sets", listSetTotalsHandler(db))
	return mux
}
