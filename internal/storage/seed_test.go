package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSeedDefault(t *testing.T) {
	friends, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(friends) != 3 {
		t.Fatalf("expected 3 seed friends, got %d", len(friends))
	}
	if friends[0].Name != "Clark" || friends[0].Balance != -7 {
		t.Errorf("first friend = %+v", friends[0])
	}
	if friends[1].Name != "Sarah" || friends[1].Balance != 20 {
		t.Errorf("second friend = %+v", friends[1])
	}
}

func TestLoadSeedFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "friendsplit-seed-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "seed.json")
	content := `{"friends":[{"id":"a","name":"Ana","image":"x","balance":3.5}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed: %v", err)
	}

	friends, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(friends) != 1 || friends[0].Balance != 3.5 {
		t.Errorf("friends = %+v", friends)
	}

	if _, err := LoadSeed(filepath.Join(tempDir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseSeedValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "malformed", data: `{"friends":`, wantErr: "failed to parse seed"},
		{name: "missing id", data: `{"friends":[{"name":"A"}]}`, wantErr: "missing id"},
		{name: "duplicate id", data: `{"friends":[{"id":"1","name":"A"},{"id":"1","name":"B"}]}`, wantErr: "duplicate id"},
		{name: "missing name", data: `{"friends":[{"id":"1"}]}`, wantErr: "missing name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseSeed err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	friends, err := ParseSeed([]byte(`{"friends":[]}`))
	if err != nil || len(friends) != 0 {
		t.Errorf("empty seed = %v, %v", friends, err)
	}
}
