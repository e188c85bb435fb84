package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// resolveStoreID resolves user input to a store ID: exact match first,
// then unique prefix.
func resolveStoreID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("store ID is required")
	}

	stores, err := app.Stores.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range stores {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range stores {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("store not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("store ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDept validates a --dept flag value.
func parseDept(s string) (domain.Department, error) {
	d := strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidDepartments[d] {
		return "", fmt.Errorf("invalid department %q (expected boh or foh)", s)
	}
	return domain.Department(d), nil
}

// readInput reads pasted report text from a file, or from stdin when
// path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
