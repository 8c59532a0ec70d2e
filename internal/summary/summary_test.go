package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePortfolio(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateReportsTotalAndMostValuable(t *testing.T) {
	path := writePortfolio(t, strings.Join([]string{
		"card_id,card_name,set_id,card_number,binder_name,page_number,slot_number,set_name,card_market_value,index",
		"base1-4,Charizard,base1,4,Red Binder,1,1,Base,420.50,Red Binder-1-1",
		"base1-63,Squirtle,base1,63,Red Binder,1,2,Base,2.25,Red Binder-1-2",
	}, "\n"))

	var out strings.Builder
	if err := Generate(path, &out); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "Total Portfolio Value: $422.75") {
		t.Errorf("report missing total, got:\n%s", report)
	}
	if !strings.Contains(report, "Name:  Charizard") {
		t.Errorf("report missing most valuable card name, got:\n%s", report)
	}
	if !strings.Contains(report, "ID:    base1-4") {
		t.Errorf("report missing most valuable card id, got:\n%s", report)
	}
}

func TestGenerateEmptyPortfolio(t *testing.T) {
	path := writePortfolio(t, "card_id,card_name,set_id,card_number,binder_name,page_number,slot_number,set_name,card_market_value,index\n")

	var out strings.Builder
	if err := Generate(path, &out); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to summarize") {
		t.Errorf("report = %q, want empty-portfolio notice", out.String())
	}
}

func TestGenerateMissingFile(t *testing.T) {
	var out strings.Builder
	err := Generate(filepath.Join(t.TempDir(), "nope.csv"), &out)
	if err == nil {
		t.Fatal("Generate succeeded on missing file, want error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want file-not-found message", err)
	}
}
