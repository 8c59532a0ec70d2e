package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Row is one line of the final portfolio CSV.
type Row struct {
	CardID      string
	CardName    string
	SetID       string
	CardNumber  string
	BinderName  string
	PageNumber  string
	SlotNumber  string
	SetName     string
	MarketValue float64
	Index       string
}

var portfolioHeader = []string{
	"card_id", "card_name", "set_id", "card_number",
	"binder_name", "page_number", "slot_number",
	"set_name", "card_market_value", "index",
}

const missingSetName = "NOT_FOUND"

// Update merges the card inventory with the set lookup data and writes
// the portfolio CSV to outputFile. An empty inventory still produces a
// header-only file.
func Update(inventoryDir, lookupDir, outputFile string) error {
	inventory, err := LoadInventory(inventoryDir)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	lookup, err := LoadLookup(lookupDir)
	if err != nil {
		return fmt.Errorf("loading lookup: %w", err)
	}

	if len(inventory) == 0 {
		fmt.Fprintln(os.Stderr, "Error: inventory is empty. Writing empty portfolio with headers.")
		return writePortfolio(outputFile, nil)
	}

	rows := make([]Row, 0, len(inventory))
	for _, card := range inventory {
		row := Row{
			CardID:     card.CardID,
			CardName:   card.CardName,
			SetID:      card.SetID,
			CardNumber: card.CardNumber,
			BinderName: card.BinderName,
			PageNumber: card.PageNumber,
			SlotNumber: card.SlotNumber,
			SetName:    missingSetName,
		}
		if match, ok := lookup[card.CardID]; ok {
			row.SetName = match.SetName
			row.MarketValue = match.MarketValue
		}
		row.Index = locationIndex(card)
		rows = append(rows, row)
	}

	if err := writePortfolio(outputFile, rows); err != nil {
		return err
	}
	fmt.Printf("Wrote portfolio to %s\n", outputFile)
	return nil
}

// locationIndex is the physical shelf address of a card:
// "<binder>-<page>-<slot>".
func locationIndex(card InventoryCard) string {
	return strings.TrimSpace(card.BinderName) + "-" +
		strings.TrimSpace(card.PageNumber) + "-" +
		strings.TrimSpace(card.SlotNumber)
}

func writePortfolio(outputFile string, rows []Row) error {
	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(portfolioHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.CardID, row.CardName, row.SetID, row.CardNumber,
			row.BinderName, row.PageNumber, row.SlotNumber,
			row.SetName, formatValue(row.MarketValue), row.Index,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadPortfolio loads a previously written portfolio CSV back into rows.
func ReadPortfolio(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := columnIndex(records[0])
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		value, _ := strconv.ParseFloat(field(rec, cols, "card_market_value"), 64)
		rows = append(rows, Row{
			CardID:      field(rec, cols, "card_id"),
			CardName:    field(rec, cols, "card_name"),
			SetID:       field(rec, cols, "set_id"),
			CardNumber:  field(rec, cols, "card_number"),
			BinderName:  field(rec, cols, "binder_name"),
			PageNumber:  field(rec, cols, "page_number"),
			SlotNumber:  field(rec, cols, "slot_number"),
			SetName:     field(rec, cols, "set_name"),
			MarketValue: value,
			Index:       field(rec, cols, "index"),
		})
	}
	return rows, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
