package summary

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/admin/pokemon-card-portfolio/internal/portfolio"
)

// Generate reads a portfolio CSV and writes a value report to w: the
// total portfolio value and the single most valuable card.
func Generate(portfolioFile string, w io.Writer) error {
	if _, err := os.Stat(portfolioFile); err != nil {
		return fmt.Errorf("portfolio file not found at %q", portfolioFile)
	}

	rows, err := portfolio.ReadPortfolio(portfolioFile)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", portfolioFile, err)
	}

	if len(rows) == 0 {
		fmt.Fprintf(w, "Portfolio %q contains no data. Nothing to summarize.\n", portfolioFile)
		return nil
	}

	var total float64
	best := rows[0]
	for _, row := range rows {
		total += row.MarketValue
		if row.MarketValue > best.MarketValue {
			best = row
		}
	}

	divider := strings.Repeat("-", 40)
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Portfolio Summary for: %s\n", portfolioFile)
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total Portfolio Value: $%.2f\n", total)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Most Valuable Card ---")
	fmt.Fprintf(w, "Name:  %s\n", best.CardName)
	fmt.Fprintf(w, "ID:    %s\n", best.CardID)
	fmt.Fprintf(w, "Value: $%.2f\n", best.MarketValue)
	fmt.Fprintln(w, divider)
	return nil
}
