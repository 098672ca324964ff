// Package store persists portal state. Users and papers live in
// whole-file JSON documents (users.json, past_papers.json) kept
// compatible with the previous deployment; all access to each file is
// serialized behind a mutex. Auth sessions and per-session quiz state
// live in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const (
	usersFile  = "users.json"
	papersFile = "past_papers.json"
)

// ErrUserExists is returned when creating a user whose username is taken.
var ErrUserExists = errors.New("username already exists")

type Store struct {
	dir string

	usersMu  sync.Mutex
	papersMu sync.Mutex

	db *sql.DB
}

// New opens a store rooted at dataDir, with auth sessions kept in the
// SQLite database at dbPath (":memory:" works for tests).
func New(dataDir, dbPath string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sessions database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sessions database: %w", err)
	}

	s := &Store{dir: dataDir, db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS auth_sessions (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		active_quiz TEXT NOT NULL DEFAULT '',
		quiz_result TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) usersPath() string  { return filepath.Join(s.dir, usersFile) }
func (s *Store) papersPath() string { return filepath.Join(s.dir, papersFile) }

// readJSONFile loads path into v. A missing file leaves v untouched
// and returns false.
func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// writeJSONFile rewrites path wholesale with v as indented JSON.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
