package statcast

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// CacheKey identifies one fetch: every aggregate derived from the same
// (player, range, perspective) reuses the same download.
type CacheKey struct {
	Perspective string
	PlayerID    int
	Start       string
	End         string
}

// Cache stores raw statcast CSV payloads keyed by fetch parameters. An
// in-process map fronts the sqlite table, so repeated derivations within a
// run never touch the database either. A nil *Cache is valid and caches
// nothing.
type Cache struct {
	db *sql.DB

	mu  sync.Mutex
	mem map[CacheKey][]byte
}

// NewCache opens (or creates) a cache database at dbPath.
func NewCache(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, mem: make(map[CacheKey][]byte)}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS fetches (
		perspective TEXT NOT NULL,
		player_id INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		payload BLOB NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (perspective, player_id, start_date, end_date)
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the cached payload for key, if any.
func (c *Cache) Get(key CacheKey) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	c.mu.Lock()
	if payload, ok := c.mem[key]; ok {
		c.mu.Unlock()
		return payload, true, nil
	}
	c.mu.Unlock()

	row := c.db.QueryRow(`
		SELECT payload FROM fetches
		WHERE perspective = ? AND player_id = ? AND start_date = ? AND end_date = ?
	`, key.Perspective, key.PlayerID, key.Start, key.End)

	var payload []byte
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scanning cached fetch: %w", err)
	}

	c.mu.Lock()
	c.mem[key] = payload
	c.mu.Unlock()
	return payload, true, nil
}

// Put stores a payload for key, replacing any previous fetch.
func (c *Cache) Put(key CacheKey, payload []byte) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	c.mem[key] = payload
	c.mu.Unlock()

	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO fetches (perspective, player_id, start_date, end_date, payload)
		VALUES (?, ?, ?, ?, ?)
	`, key.Perspective, key.PlayerID, key.Start, key.End, payload)
	if err != nil {
		return fmt.Errorf("inserting cached fetch: %w", err)
	}
	return nil
}
