package database

import (
	"path/filepath"
	"testing"
)

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='settings'").Scan(&count)
	if err != nil {
		t.Fatalf("checking for settings table: %v", err)
	}
	if count != 1 {
		t.Errorf("settings table count = %d, want 1", count)
	}
}

func TestEnsureSchema_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// 1. Initialize schema and insert a record
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.Exec(`INSERT INTO settings (key, value) VALUES ('tempUnit', 'fahrenheit')`); err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}

	// 2. Ensure schema again (should not drop table)
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}
	db.Close()

	// 3. Reopen and verify record exists
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM settings WHERE key = 'tempUnit'").Scan(&value); err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}
	if value != "fahrenheit" {
		t.Errorf("value = %q, want fahrenheit. Data was likely lost due to table drop.", value)
	}
}
