package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

type portfolioCard struct {
	CardID      string  `json:"card_id"`
	CardName    string  `json:"card_name"`
	SetID       string  `json:"set_id"`
	SetName     string  `json:"set_name"`
	MarketValue float64 `json:"card_market_value"`
	Location    string  `json:"location_index"`
}

type setTotal struct {
	SetID      string  `json:"set_id"`
	SetName    string  `json:"set_name"`
	CardCount  int     `json:"card_count"`
	TotalValue float64 `json:"total_value"`
}

func listPortfolioHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.QueryContext(r.Context(), `
			SELECT card_id, card_name, set_id, set_name, card_market_value, location_index
			FROM portfolio_cards
			ORDER BY card_market_value DESC
		`)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		cards := make([]portfolioCard, 0)
		for rows.Next() {
			var c portfolioCard
			if err := rows.Scan(&c.CardID, &c.CardName, &c.SetID, &c.SetName, &c.MarketValue, &c.Location); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			cards = append(cards, c)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, cards)
	}
}

func listSetTotalsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.QueryContext(r.Context(), `
			SELECT set_id, MAX(set_name), COUNT(*), COALESCE(SUM(card_market_value), 0)
			FROM portfolio_cards
			GROUP BY set_id
			ORDER BY set_id
		`)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		totals := make([]setTotal, 0)
		for rows.Next() {
			var t setTotal
			if err := rows.Scan(&t.SetID, &t.SetName, &t.CardCount, &t.TotalValue); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			totals = append(totals, t)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, totals)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
