package storage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmynk/friendsplit/internal/models"
)

//go:embed friends.json
var defaultSeed []byte

// seedFile is the on-disk layout of a seed fixture.
type seedFile struct {
	Friends []models.Friend `json:"friends"`
}

// LoadSeed reads the initial friend list. An empty path loads the embedded
// default fixture.
func LoadSeed(path string) ([]models.Friend, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

// ParseSeed decodes a seed fixture and checks that identities are present
// and unique.
func ParseSeed(data []byte) ([]models.Friend, error) {
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	seen := make(map[string]bool, len(seed.Friends))
	for i, f := range seed.Friends {
		if f.ID == "" {
			return nil, fmt.Errorf("seed friend %d: missing id", i)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("seed friend %d: duplicate id %s", i, f.ID)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("seed friend %s: missing name", f.ID)
		}
		seen[f.ID] = true
	}
	return seed.Friends, nil
}
