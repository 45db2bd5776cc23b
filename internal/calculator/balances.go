package calculator

import (
	"math"

	"github.com/mmynk/friendsplit/internal/models"
)

// Summary aggregates balances across the friend list.
type Summary struct {
	OwedToYou float64 `json:"owed_to_you"` // Sum of positive balances
	YouOwe    float64 `json:"you_owe"`     // Sum of |negative balances|
	Net       float64 `json:"net"`         // OwedToYou - YouOwe
	Even      int     `json:"even"`        // Friends with a settled balance
}

// Summarize computes the totals for the given friends. Totals saturate at
// ±math.MaxFloat64 so they always stay finite.
func Summarize(friends []models.Friend) Summary {
	var s Summary
	for _, f := range friends {
		switch f.Standing() {
		case models.StandingOwesYou:
			s.OwedToYou = saturate(s.OwedToYou + f.Balance)
		case models.StandingYouOwe:
			s.YouOwe = saturate(s.YouOwe + f.Owed())
		default:
			s.Even++
		}
	}
	s.Net = saturate(s.OwedToYou - s.YouOwe)
	return s
}

func saturate(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
