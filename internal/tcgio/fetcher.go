package tcgio

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptySetID is returned before any network call when the set
// identifier is missing or blank.
var ErrEmptySetID = errors.New("set identifier must not be empty")

const defaultPageSize = 250

// Fetcher retrieves the card collection for a set from the Pokémon TCG
// API and persists the raw JSON response to disk, one file per set.
type Fetcher struct {
	BaseURL  string
	PageSize int
	Client   *http.Client
}

func NewFetcher(baseURL string, pageSize int) *Fetcher {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Fetcher{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		PageSize: pageSize,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads all cards of setID and writes the response body
// verbatim to destPath. On any failure the destination file is left
// untouched.
func (f *Fetcher) Fetch(setID, destPath string) error {
	if strings.TrimSpace(setID) == "" {
		return ErrEmptySetID
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("set.id:%q", setID))
	query.Set("pageSize", fmt.Sprint(f.PageSize))
	reqURL := fmt.Sprintf("%s/cards?%s", f.BaseURL, query.Encode())

	resp, err := f.Client.Get(reqURL)
	if err != nil {
		return fmt.Errorf("set %s: fetch failed: %w", setID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("set %s: api status %d", setID, resp.StatusCode)
	}

	// Read the full body before touching the file so a mid-transfer
	// failure never truncates an existing lookup.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("set %s: reading response: %w", setID, err)
	}

	if err := os.WriteFile(destPath, body, 0644); err != nil {
		return fmt.Errorf("set %s: writing %s: %w", setID, destPath, err)
	}
	return nil
}

// FetchIntoDir fetches setID into <dir>/<setID>.json, creating dir if
// needed.
func (f *Fetcher) FetchIntoDir(setID, dir string) error {
	if strings.TrimSpace(setID) == "" {
		return ErrEmptySetID
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return f.Fetch(setID, filepath.Join(dir, setID+".json"))
}

// RefreshAll re-fetches every set that already has a <id>.json lookup
// file in dir, overwriting each file in place. A failed set is reported
// and skipped; the batch keeps going.
func (f *Fetcher) RefreshAll(dir string, report io.Writer) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	for _, file := range files {
		setID := strings.TrimSuffix(filepath.Base(file), ".json")
		fmt.Fprintf(report, "Refreshing set %s...\n", setID)
		if err := f.Fetch(setID, file); err != nil {
			fmt.Fprintln(os.Stderr, "Error refreshing set:", err)
			continue
		}
	}
	fmt.Fprintln(report, "Refresh complete.")
	return nil
}
