package models

import (
	"math"
	"strconv"
)

// Friend is one entry of the friend list.
type Friend struct {
	// ID is the opaque unique identifier (UUID format for friends added at runtime).
	ID string `json:"id"`

	// Name is the display name, 1-10 characters, first letter capitalized.
	Name string `json:"name"`

	// Image is the avatar reference derived from ID.
	Image string `json:"image"`

	// Balance is the signed running total between the user and this friend.
	// See the package documentation for the sign convention.
	Balance float64 `json:"balance"`
}

// Standing classifies a balance from the user's point of view.
type Standing string

const (
	// StandingYouOwe means the user owes the friend (balance < 0).
	StandingYouOwe Standing = "you-owe"
	// StandingOwesYou means the friend owes the user (balance > 0).
	StandingOwesYou Standing = "owes-you"
	// StandingEven means the balance is settled.
	StandingEven Standing = "even"
)

// Standing returns the classification of the friend's balance.
func (f Friend) Standing() Standing {
	switch {
	case f.Balance < 0:
		return StandingYouOwe
	case f.Balance > 0:
		return StandingOwesYou
	default:
		return StandingEven
	}
}

// Owed returns the displayed magnitude of the balance.
func (f Friend) Owed() float64 {
	return math.Abs(f.Balance)
}

// WithBalanceDelta returns a copy of f with delta added to its balance.
func (f Friend) WithBalanceDelta(delta float64) Friend {
	f.Balance += delta
	return f
}

// FormatAmount renders an amount the way the UI shows it: shortest decimal
// representation, no grouping, no trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
