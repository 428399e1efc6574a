package storage

import (
	"fmt"
	"path/filepath"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/config"
	"github.com/cristianoliveira/segbar/internal/storage/sqlite"
)

const dbFileName = "segbar.db"

var _ Storage = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig opens the database in the configured state directory.
func NewFromConfig() (Storage, error) {
	return Open(DBPath())
}

// DBPath returns the database path inside the state directory.
func DBPath() string {
	return filepath.Join(config.Get("state_dir", ""), dbFileName)
}

// Open opens the database at path.
func Open(path string) (Storage, error) {
	colors.Debug(fmt.Sprintf("opening storage at %s", path))
	s, err := sqlite.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
