// Package storage wires the admin SQLite journal into the server.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	adminsqlite "github.com/louisbranch/cashdesk/internal/services/admin/storage/sqlite"
)

// DefaultPath is the journal location when none is configured.
var DefaultPath = filepath.Join("data", "admin.db")

// OpenStore opens the admin SQLite journal and creates its parent directory
// when needed. A blank path selects DefaultPath.
func OpenStore(path string) (*adminsqlite.Store, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
