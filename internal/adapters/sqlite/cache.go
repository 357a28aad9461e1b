// Package sqlite caches resolved save-location hints so repeat lookups do
// not hit the wiki.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pcsm/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Cache implements ports.HintCache using SQLite
type Cache struct {
	db   *sql.DB
	path string
}

// Ensure Cache implements HintCache
var _ ports.HintCache = (*Cache)(nil)

// Open opens (or creates) the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS hints (
			game TEXT PRIMARY KEY,
			hints TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Cache{db: db, path: path}, nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Hints returns the cached hint list for a game. The second return is false
// when the game has never been cached.
func (c *Cache) Hints(game string) ([]string, bool, error) {
	var raw string
	err := c.db.QueryRow(`SELECT hints FROM hints WHERE game = ?`, game).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var hints []string
	if err := json.Unmarshal([]byte(raw), &hints); err != nil {
		return nil, false, fmt.Errorf("corrupt hint entry for %q: %w", game, err)
	}
	return hints, true, nil
}

// PutHints stores (or replaces) the hint list for a game. An empty list is a
// valid entry: it records that the lookup came back with nothing.
func (c *Cache) PutHints(game string, hints []string) error {
	raw, err := json.Marshal(hints)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(`
		INSERT OR REPLACE INTO hints (game, hints, fetched_at) VALUES (?, ?, ?)
	`, game, string(raw), time.Now().Unix())
	return err
}

// Setting returns a stored setting value, empty when unset.
func (c *Cache) Setting(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// PutSetting stores a setting value.
func (c *Cache) PutSetting(key, value string) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)
	`, key, value)
	return err
}
