// Package prefs persists the temperature unit and the signed-in e-mail
package prefs

import (
	"fmt"
	"log"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
)

// Keys in the local store
const (
	KeyTempUnit  = "tempUnit"
	KeyUserEmail = "userEmail"
)

// Store is the key-value collaborator; storage.Repository implements it
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Clear() error
}

// LoadUnit returns the persisted unit. First run, unreadable storage and
// unknown values all fall back to Celsius.
func LoadUnit(store Store) units.Unit {
	value, ok, err := store.Get(KeyTempUnit)
	if err != nil {
		log.Printf("Error loading temperature preference: %v", err)
		return units.Celsius
	}
	if !ok {
		return units.Celsius
	}

	unit, err := units.ParseUnit(value)
	if err != nil {
		log.Printf("Ignoring stored temperature preference: %v", err)
		return units.Celsius
	}
	return unit
}

// SaveUnit persists the unit
func SaveUnit(store Store, unit units.Unit) error {
	if err := store.Set(KeyTempUnit, string(unit)); err != nil {
		return fmt.Errorf("saving temperature preference: %w", err)
	}
	return nil
}

// ToggleUnit flips the persisted unit and returns the new value
func ToggleUnit(store Store) (units.Unit, error) {
	next := LoadUnit(store).Toggle()
	if err := SaveUnit(store, next); err != nil {
		return "", err
	}
	return next, nil
}

// LoadSession returns the signed-in session, or nil when signed out
func LoadSession(store Store) (*models.UserSession, error) {
	email, ok, err := store.Get(KeyUserEmail)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !ok || email == "" {
		return nil, nil
	}
	return &models.UserSession{Email: email}, nil
}

// SaveSession records the signed-in e-mail
func SaveSession(store Store, email string) error {
	if email == "" {
		return fmt.Errorf("saving session: email cannot be empty")
	}
	if err := store.Set(KeyUserEmail, email); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// ClearSession wipes all local state, including the unit preference
func ClearSession(store Store) error {
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
