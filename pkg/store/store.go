// Package store is the persisted collections store: a set of
// independently keyed, JSON-serialized collections kept in a local
// sqlite file, plus the change-broadcast bus that keeps independently
// rendered views in sync.
package store

import (
	"database/sql"
	"sync"

	"github.com/tidwall/gjson"
	_ "modernc.org/sqlite"
)

// Persisted storage keys. Each key holds one JSON blob; every write
// replaces the whole value.
const (
	KeyEnergyLevel   = "se_energy_level"
	KeyEnrolled      = "se_enrolled_events"
	KeyPriorityMap   = "se_event_priority_map"
	KeyDeadlines     = "se_deadline_events"
	KeyProfileStatus = "se_profile_status"
	KeyConversations = "se_conversations"
)

type Store struct {
	sql *sql.DB
	bus *Bus

	// session holds per-process flags (the tab-session analog), used to
	// guard one-shot UI behavior like the nudge prompt.
	sessionMu sync.Mutex
	session   map[string]bool
}

// Open opens (and if needed creates) the store file.
func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS local_state (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
	`); err != nil {
		return nil, err
	}
	return &Store{
		sql:     db,
		bus:     NewBus(),
		session: make(map[string]bool),
	}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

// Bus returns the change-broadcast hub shared by all views of this store.
func (s *Store) Bus() *Bus {
	return s.bus
}

// GetRaw reads the raw value under a key. Missing keys read as absent.
func (s *Store) GetRaw(key string) (string, bool) {
	var v string
	err := s.sql.QueryRow("SELECT value FROM local_state WHERE key = ?", key).Scan(&v)
	if err != nil {
		return "", false
	}
	return v, true
}

// PutRaw replaces the value under a key.
func (s *Store) PutRaw(key, value string) error {
	_, err := s.sql.Exec(`
INSERT INTO local_state(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// DeleteRaw removes a key entirely.
func (s *Store) DeleteRaw(key string) error {
	_, err := s.sql.Exec("DELETE FROM local_state WHERE key = ?", key)
	return err
}

// getJSON reads the blob under key if it is present and well-formed
// JSON. Malformed blobs are treated the same as missing ones; persisted
// data is soft state and parse failures are never surfaced.
func (s *Store) getJSON(key string) (string, bool) {
	raw, ok := s.GetRaw(key)
	if !ok || !gjson.Valid(raw) {
		return "", false
	}
	return raw, true
}

// SessionFlag reports whether a session-scoped flag has been set in this
// process.
func (s *Store) SessionFlag(name string) bool {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return s.session[name]
}

// SetSessionFlag sets a session-scoped flag. Flags never persist across
// processes.
func (s *Store) SetSessionFlag(name string) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	s.session[name] = true
}

// CollectionSizes reports how many entries each persisted collection
// currently holds, for the store stats command.
func (s *Store) CollectionSizes() map[string]int {
	sizes := map[string]int{}
	if raw, ok := s.getJSON(KeyEnrolled); ok {
		sizes[KeyEnrolled] = int(gjson.Get(raw, "#").Int())
	}
	if raw, ok := s.getJSON(KeyDeadlines); ok {
		sizes[KeyDeadlines] = int(gjson.Get(raw, "#").Int())
	}
	if raw, ok := s.getJSON(KeyPriorityMap); ok {
		n := 0
		gjson.Parse(raw).ForEach(func(_, _ gjson.Result) bool { n++; return true })
		sizes[KeyPriorityMap] = n
	}
	if raw, ok := s.getJSON(KeyConversations); ok {
		n := 0
		gjson.Parse(raw).ForEach(func(_, _ gjson.Result) bool { n++; return true })
		sizes[KeyConversations] = n
	}
	return sizes
}
