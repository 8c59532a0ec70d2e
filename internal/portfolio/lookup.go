package portfolio

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LookupCard is one card row distilled from a set lookup file, carrying
// the best available market price.
type LookupCard struct {
	CardID      string
	SetID       string
	SetName     string
	Name        string
	MarketValue float64
}

type lookupResponse struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Set  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"set"`
		TCGPlayer struct {
			Prices struct {
				Holofoil struct {
					Market float64 `json:"market"`
				} `json:"holofoil"`
				Normal struct {
					Market float64 `json:"market"`
				} `json:"normal"`
			} `json:"prices"`
		} `json:"tcgplayer"`
	} `json:"data"`
}

// LoadLookup reads every *.json lookup file in dir and returns one entry
// per card ID. Holofoil market price wins over normal; when a card shows
// up in more than one file the highest price is kept. Unreadable files
// are skipped.
func LoadLookup(dir string) (map[string]LookupCard, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	cards := make(map[string]LookupCard)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		var resp lookupResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			continue
		}

		for _, rec := range resp.Data {
			if rec.ID == "" {
				continue
			}
			value := rec.TCGPlayer.Prices.Holofoil.Market
			if value == 0 {
				value = rec.TCGPlayer.Prices.Normal.Market
			}
			card := LookupCard{
				CardID:      rec.ID,
				SetID:       rec.Set.ID,
				SetName:     rec.Set.Name,
				Name:        rec.Name,
				MarketValue: value,
			}
			if prev, ok := cards[card.CardID]; !ok || card.MarketValue > prev.MarketValue {
				cards[card.CardID] = card
			}
		}
	}
	return cards, nil
}
