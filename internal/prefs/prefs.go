// Package prefs is the kv-backed preference store: the handful of values the
// app reads at startup that don't belong in the config file.
package prefs

import (
	"database/sql"
	"fmt"
)

// Keys for well-known preferences.
const (
	KeyActiveTheme     = "theme.active"
	KeyGlassMode       = "theme.glass"
	KeyPremiumUnlocked = "premium.unlocked"
)

// Store reads and writes preferences in the kv table.
type Store struct {
	db *sql.DB
}

// NewStore creates a preference store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key, or fallback when unset.
func (s *Store) Get(key, fallback string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading pref %q: %w", key, err)
	}
	return v, nil
}

// Set stores a preference value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing pref %q: %w", key, err)
	}
	return nil
}

// GetBool returns a boolean preference, or fallback when unset.
func (s *Store) GetBool(key string, fallback bool) (bool, error) {
	def := "false"
	if fallback {
		def = "true"
	}
	v, err := s.Get(key, def)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetBool stores a boolean preference.
func (s *Store) SetBool(key string, on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return s.Set(key, v)
}

// SetGlassMode persists the glass-mode flag. Satisfies theme.Prefs.
func (s *Store) SetGlassMode(on bool) error {
	return s.SetBool(KeyGlassMode, on)
}

// SetActiveTheme persists the active theme id. Satisfies theme.Prefs.
func (s *Store) SetActiveTheme(id string) error {
	return s.Set(KeyActiveTheme, id)
}

// ActiveTheme returns the active theme id, or fallback when none was chosen.
func (s *Store) ActiveTheme(fallback string) (string, error) {
	return s.Get(KeyActiveTheme, fallback)
}
