// Shared helpers for mealweek CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tasteops/mealweek/internal/sqlite"
	"github.com/tasteops/mealweek/pkg/types"
)

// openStore resolves the data directory and opens the store. The caller
// must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := sqlite.Open(types.Config{
		DataDir:           dataDir,
		DBFile:            cfg.DBFile,
		BcryptCredentials: cfg.AuthBcrypt,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// printJSON renders any value as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseDateFlag parses an optional --start/--end style "2006-01-02" value.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return &t, nil
}

// parseLineSpec parses one --item value of the form "ITEMID:QTY".
func parseLineSpec(spec string) (itemID int64, quantity int, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid item %q (expected ITEMID:QTY)", spec)
	}
	itemID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil || itemID <= 0 {
		return 0, 0, fmt.Errorf("invalid item ID in %q", spec)
	}
	quantity, err = strconv.Atoi(parts[1])
	if err != nil || quantity <= 0 {
		return 0, 0, fmt.Errorf("invalid quantity in %q", spec)
	}
	return itemID, quantity, nil
}

// parseID parses a positional numeric ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

// formatDate renders an optional date for table output.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
