package portfolio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
)

// InventoryCard is one physically owned card, keyed into the lookup by
// card_id = "<set_id>-<card_number>".
type InventoryCard struct {
	CardID     string
	CardName   string
	SetID      string
	CardNumber string
	BinderName string
	PageNumber string
	SlotNumber string
}

// LoadInventory reads every *.csv inventory file in dir. Files that
// cannot be read or parsed are skipped, as are rows missing a set ID or
// card number.
func LoadInventory(dir string) ([]InventoryCard, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	var inventory []InventoryCard
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			continue
		}

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		f.Close()
		if err != nil || len(records) < 2 {
			continue
		}

		cols := columnIndex(records[0])
		for _, row := range records[1:] {
			card := InventoryCard{
				CardName:   field(row, cols, "card_name", "name"),
				SetID:      strings.TrimSpace(field(row, cols, "set_id")),
				CardNumber: strings.TrimSpace(field(row, cols, "card_number", "number")),
				BinderName: field(row, cols, "binder_name"),
				PageNumber: field(row, cols, "page_number"),
				SlotNumber: field(row, cols, "slot_number"),
			}
			if card.SetID == "" && card.CardNumber == "" {
				continue
			}
			card.CardID = card.SetID + "-" + card.CardNumber
			inventory = append(inventory, card)
		}
	}
	return inventory, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return cols
}

// field returns the first of the named columns present in the row;
// alternate headers allow older inventory exports through.
func field(row []string, cols map[string]int, names ...string) string {
	for _, name := range names {
		if i, ok := cols[name]; ok && i < len(row) {
			return row[i]
		}
	}
	return ""
}
