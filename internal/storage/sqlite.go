package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3"
	homedir "github.com/mitchellh/go-homedir"
)

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = "default"

// SQLiteStore persists key-value pairs for one profile in a shared
// sqlite database. A file lock beside the database keeps two CLI
// processes from interleaving read-modify-write cycles; within one
// process the store is used from a single goroutine.
type SQLiteStore struct {
	db      *sql.DB
	lock    *flock.Flock
	profile string
}

// Open opens (creating if needed) the database under ~/.quranreviser
// and binds the store to the given profile. An empty profile name
// falls back to DefaultProfile.
func Open(profile string) (*SQLiteStore, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".quranreviser")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}
	return OpenPath(filepath.Join(dir, "quranreviser.db"), profile)
}

// OpenPath opens a store at an explicit database path. Used by Open
// and by tests.
func OpenPath(dbPath, profile string) (*SQLiteStore, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	lock := flock.New(dbPath + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("cannot lock database: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		lock.Unlock()
		return nil, err
	}

	return &SQLiteStore{db: db, lock: lock, profile: profile}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		profile TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (profile, key)
	);
	`
	_, err := db.Exec(query)
	return err
}

// Close releases the database and the process lock.
func (s *SQLiteStore) Close() error {
	err := s.db.Close()
	if uerr := s.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

// Profile returns the profile this store is bound to.
func (s *SQLiteStore) Profile() string {
	return s.profile
}

func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM kv WHERE profile = ? AND key = ?`,
		s.profile, key,
	).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			Log.Debugf("storage: get %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) Set(key, value string) bool {
	_, err := s.db.Exec(`
		INSERT INTO kv (profile, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(profile, key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`,
		s.profile, key, value,
	)
	if err != nil {
		Log.Debugf("storage: set %q: %v", key, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Remove(key string) bool {
	_, err := s.db.Exec(
		`DELETE FROM kv WHERE profile = ? AND key = ?`,
		s.profile, key,
	)
	if err != nil {
		Log.Debugf("storage: remove %q: %v", key, err)
		return false
	}
	return true
}

// Profiles lists every profile that has at least one stored key,
// sorted by name.
func (s *SQLiteStore) Profiles() []string {
	rows, err := s.db.Query(`SELECT DISTINCT profile FROM kv ORDER BY profile`)
	if err != nil {
		Log.Debugf("storage: profiles: %v", err)
		return nil
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err == nil {
			profiles = append(profiles, p)
		}
	}
	return profiles
}
