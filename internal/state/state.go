package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/panes/internal/db"
)

const (
	appName    = "panes"
	dbFileName = "panes.db"
)

// Manager is a sqlite-backed Storage.
type Manager struct {
	db *sql.DB
}

// Open opens (or creates) the database at path. An empty path uses the XDG data dir.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Get returns the value stored under key.
func (m *Manager) Get(key string) (string, bool, error) {
	var value sql.NullString
	err := m.db.QueryRow(`SELECT value FROM kv_items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dbutil.NullStringValue(value), value.Valid, nil
}

// Set stores value under key.
func (m *Manager) Set(key, value string) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO kv_items (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`, key, value, time.Now().Unix())
		return err
	})
}

// GetItem implements Storage; read errors are treated as a missing item.
func (m *Manager) GetItem(key string) (string, bool) {
	v, ok, err := m.Get(key)
	if err != nil {
		return "", false
	}
	return v, ok
}

// SetItem implements Storage; write errors are dropped.
func (m *Manager) SetItem(key, value string) {
	_ = m.Set(key, value)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
