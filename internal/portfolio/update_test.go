package portfolio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInventoryBuildsCardIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "binder1.csv", strings.Join([]string{
		"card_name,set_id,card_number,binder_name,page_number,slot_number",
		"Charizard,base1,4,Red Binder,1,1",
		"Squirtle, base1 , 63 ,Red Binder,1,2",
	}, "\n"))

	inventory, err := LoadInventory(dir)
	if err != nil {
		t.Fatalf("LoadInventory returned error: %v", err)
	}
	if len(inventory) != 2 {
		t.Fatalf("inventory has %d cards, want 2", len(inventory))
	}

	if got := inventory[0].CardID; got != "base1-4" {
		t.Errorf("card_id = %q, want %q", got, "base1-4")
	}
	if got := inventory[1].CardID; got != "base1-63" {
		t.Errorf("card_id with padded fields = %q, want %q", got, "base1-63")
	}
}

func TestLoadInventoryAcceptsAlternateHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "old_export.csv", strings.Join([]string{
		"name,set_id,number,binder_name,page_number,slot_number",
		"Pikachu,base1,58,Yellow Binder,3,7",
	}, "\n"))

	inventory, err := LoadInventory(dir)
	if err != nil {
		t.Fatalf("LoadInventory returned error: %v", err)
	}
	if len(inventory) != 1 {
		t.Fatalf("inventory has %d cards, want 1", len(inventory))
	}
	if inventory[0].CardName != "Pikachu" || inventory[0].CardID != "base1-58" {
		t.Errorf("got %+v, want Pikachu/base1-58", inventory[0])
	}
}

func TestUpdateMergesLookupOntoInventory(t *testing.T) {
	inventoryDir := t.TempDir()
	lookupDir := t.TempDir()
	output := filepath.Join(t.TempDir(), "portfolio.csv")

	writeFile(t, inventoryDir, "binder1.csv", strings.Join([]string{
		"card_name,set_id,card_number,binder_name,page_number,slot_number",
		"Charizard,base1,4,Red Binder,1,1",
		"Missingno,glitch,0,Red Binder,9,9",
	}, "\n"))
	writeFile(t, lookupDir, "base1.json", `{"data":[{"id":"base1-4","name":"Charizard","set":{"id":"base1","name":"Base"},"tcgplayer":{"prices":{"holofoil":{"market":420.5}}}}]}`)

	if err := Update(inventoryDir, lookupDir, output); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	rows, err := ReadPortfolio(output)
	if err != nil {
		t.Fatalf("ReadPortfolio returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("portfolio has %d rows, want 2", len(rows))
	}

	matched := rows[0]
	if matched.SetName != "Base" {
		t.Errorf("matched set_name = %q, want %q", matched.SetName, "Base")
	}
	if matched.MarketValue != 420.5 {
		t.Errorf("matched value = %v, want 420.5", matched.MarketValue)
	}
	if matched.Index != "Red Binder-1-1" {
		t.Errorf("location index = %q, want %q", matched.Index, "Red Binder-1-1")
	}

	unmatched := rows[1]
	if unmatched.SetName != "NOT_FOUND" {
		t.Errorf("unmatched set_name = %q, want NOT_FOUND", unmatched.SetName)
	}
	if unmatched.MarketValue != 0 {
		t.Errorf("unmatched value = %v, want 0", unmatched.MarketValue)
	}
}

func TestUpdateEmptyInventoryWritesHeaderOnly(t *testing.T) {
	output := filepath.Join(t.TempDir(), "portfolio.csv")

	if err := Update(t.TempDir(), t.TempDir(), output); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("output has %d lines, want header only", len(lines))
	}
	if !strings.HasPrefix(lines[0], "card_id,card_name") {
		t.Errorf("header = %q, want portfolio columns", lines[0])
	}

	rows, err := ReadPortfolio(output)
	if err != nil {
		t.Fatalf("ReadPortfolio returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("header-only portfolio yielded %d rows, want 0", len(rows))
	}
}
