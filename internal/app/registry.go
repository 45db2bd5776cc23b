package app

import (
	"fmt"
	"math"

	"github.com/mmynk/friendsplit/internal/models"
)

// Registry is the ordered friend list. Insertion order is preserved and updates
// never reorder entries.
type Registry struct {
	friends []models.Friend
}

// NewRegistry creates a registry holding a copy of seed.
func NewRegistry(seed []models.Friend) *Registry {
	friends := make([]models.Friend, len(seed))
	copy(friends, seed)
	return &Registry{friends: friends}
}

// Add appends a friend. Identity uniqueness is the caller's responsibility.
func (r *Registry) Add(f models.Friend) {
	r.friends = append(r.friends, f)
}

// UpdateBalance replaces the friend with the given id by a copy whose balance
// has delta added. A result that is not a finite number is rejected with
// ErrBalanceOverflow and the friend is left unchanged.
func (r *Registry) UpdateBalance(id string, delta float64) (models.Friend, error) {
	for i, f := range r.friends {
		if f.ID == id {
			next := f.WithBalanceDelta(delta)
			if math.IsInf(next.Balance, 0) || math.IsNaN(next.Balance) {
				return f, fmt.Errorf("update balance %s: %w", id, ErrBalanceOverflow)
			}
			r.friends[i] = next
			return r.friends[i], nil
		}
	}
	return models.Friend{}, fmt.Errorf("update balance %s: %w", id, ErrUnknownFriend)
}

// Get looks a friend up by id.
func (r *Registry) Get(id string) (models.Friend, bool) {
	for _, f := range r.friends {
		if f.ID == id {
			return f, true
		}
	}
	return models.Friend{}, false
}

// List returns a copy of the friends in order.
func (r *Registry) List() []models.Friend {
	out := make([]models.Friend, len(r.friends))
	copy(out, r.friends)
	return out
}

// Len returns the number of friends.
func (r *Registry) Len() int {
	return len(r.friends)
}
