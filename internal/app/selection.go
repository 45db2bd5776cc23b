package app

import "github.com/mmynk/friendsplit/internal/models"

// Selection tracks the friend targeted by the split form. It holds only the
// identity; the friend itself lives in the Registry.
type Selection struct {
	id string
}

// Select toggles: selecting the currently selected friend clears the
// selection, anything else replaces it. It reports whether a friend is
// selected afterwards.
func (s *Selection) Select(f models.Friend) bool {
	if s.id != "" && s.id == f.ID {
		s.id = ""
		return false
	}
	s.id = f.ID
	return true
}

// Clear removes the selection.
func (s *Selection) Clear() {
	s.id = ""
}

// ID returns the selected friend's identity and whether there is one.
func (s *Selection) ID() (string, bool) {
	return s.id, s.id != ""
}

// Is reports whether the given friend is the selected one.
func (s *Selection) Is(id string) bool {
	return s.id != "" && s.id == id
}
