package tcgio

import (
	"bufio"
	"io"
	"strings"
)

// ReadSetID reads a single set identifier from r, trimming surrounding
// whitespace. An empty line yields ErrEmptySetID.
func ReadSetID(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrEmptySetID
	}
	setID := strings.TrimSpace(scanner.Text())
	if setID == "" {
		return "", ErrEmptySetID
	}
	return setID, nil
}
