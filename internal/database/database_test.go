package database

import (
	"path/filepath"
	"testing"
)

func TestDBPath(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"", filepath.Join("data", "wardrobe-terminal.db")},
		{"/tmp/wt", filepath.Join("/tmp/wt", "wardrobe-terminal.db")},
	}

	for _, tt := range tests {
		if got := DBPath(tt.dir); got != tt.want {
			t.Errorf("DBPath(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
