// Shared helpers for circ commands.
package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/carrelworks/circ/internal/sqlite"
	"github.com/carrelworks/circ/pkg/library"
)

// databaseFileName is the SQLite file created inside the data directory.
const databaseFileName = "library.db"

// openSystem resolves the data directory, opens the database, and builds a
// System over it. The caller must close the returned store.
func openSystem() (*library.System, *sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(filepath.Join(dataDir, databaseFileName))
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	sys, err := library.NewSystem(libConfig, store)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("load library: %w", err)
	}
	return sys, store, nil
}

// operationTime returns the effective time for the command: the --date flag
// parsed as a UTC calendar date when set, otherwise the current time.
func operationTime() (time.Time, error) {
	if flagDate == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", flagDate)
	}
	return t, nil
}
