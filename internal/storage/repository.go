// Package storage is the local key-value store backing preferences and the session
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngmaloney/wardrobe-terminal/internal/database"
)

// Repository persists string values by key in the local sqlite database
type Repository struct {
	db *sql.DB
}

// Open opens the repository at dbPath
func Open(dbPath string) (*Repository, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

// NewRepository wraps an already opened database
func NewRepository(db *sql.DB) (*Repository, error) {
	if err := database.EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

// Get returns the value for key and whether it was present
func (r *Repository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *Repository) Set(key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *Repository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Clear removes every key
func (r *Repository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM settings"); err != nil {
		return fmt.Errorf("clearing settings: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}
