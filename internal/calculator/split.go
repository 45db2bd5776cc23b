package calculator

import (
	"fmt"
)

// Payer identifies who paid the bill up front.
type Payer string

const (
	// PayerUser means the user paid the whole bill.
	PayerUser Payer = "user"
	// PayerFriend means the selected friend paid the whole bill.
	PayerFriend Payer = "friend"
)

// ParsePayer converts a form value into a Payer.
func ParsePayer(s string) (Payer, error) {
	switch p := Payer(s); p {
	case PayerUser, PayerFriend:
		return p, nil
	default:
		return "", fmt.Errorf("unknown payer %q", s)
	}
}

// FriendShare returns the friend's part of the bill: bill - paidByUser.
// ok is false when there is no bill yet, in which case the share is shown empty.
func FriendShare(bill, paidByUser float64) (share float64, ok bool) {
	if bill == 0 {
		return 0, false
	}
	return bill - paidByUser, true
}

// IsNoop reports whether splitting the bill would leave the balance untouched:
// the payer covered exactly their own expense.
func IsNoop(bill, paidByUser float64, payer Payer) bool {
	share, _ := FriendShare(bill, paidByUser)
	switch payer {
	case PayerUser:
		return bill == paidByUser
	case PayerFriend:
		return bill == share
	default:
		return false
	}
}

// BalanceDelta computes the signed change to apply to the friend's balance.
//
// When the user pays, the friend owes the user their share (positive delta).
// When the friend pays, the user owes the friend the user's share (negative delta).
func BalanceDelta(bill, paidByUser float64, payer Payer) float64 {
	if payer == PayerUser {
		share, _ := FriendShare(bill, paidByUser)
		return share
	}
	return -paidByUser
}
