package app

import (
	"github.com/mmynk/friendsplit/internal/calculator"
)

// SplitState is the lifecycle state of one split session.
type SplitState int

const (
	// SplitEditing accepts field updates and submits.
	SplitEditing SplitState = iota
	// SplitSubmittedNoop is terminal: the split left the balance unchanged.
	SplitSubmittedNoop
	// SplitSubmittedApplied is terminal: the balance delta was applied.
	SplitSubmittedApplied
)

func (s SplitState) String() string {
	switch s {
	case SplitEditing:
		return "editing"
	case SplitSubmittedNoop:
		return "submitted-noop"
	case SplitSubmittedApplied:
		return "submitted-applied"
	default:
		return "unknown"
	}
}

// Outcome is the result of a successful split submit.
type Outcome struct {
	FriendID string
	Noop     bool
	Delta    float64
}

// SplitForm is the transient input state of one open split-bill form. It
// enforces 0 <= paidByUser <= bill after every accepted update.
type SplitForm struct {
	friendID    string
	bill        float64
	paidByUser  float64
	payer       calculator.Payer
	billInvalid bool
	state       SplitState
}

func newSplitForm(friendID string) *SplitForm {
	return &SplitForm{friendID: friendID, payer: calculator.PayerUser}
}

// FriendID returns the identity of the friend this session splits with.
func (s *SplitForm) FriendID() string { return s.friendID }

// Bill returns the total bill amount.
func (s *SplitForm) Bill() float64 { return s.bill }

// PaidByUser returns the user's expense.
func (s *SplitForm) PaidByUser() float64 { return s.paidByUser }

// Payer returns who is paying the bill.
func (s *SplitForm) Payer() calculator.Payer { return s.payer }

// FriendShare returns the friend's expense. ok is false while there is no bill.
func (s *SplitForm) FriendShare() (float64, bool) {
	return calculator.FriendShare(s.bill, s.paidByUser)
}

// BillInvalid reports whether the "must be above 0" indicator is shown.
func (s *SplitForm) BillInvalid() bool { return s.billInvalid }

// State returns the lifecycle state.
func (s *SplitForm) State() SplitState { return s.state }

// SetBill accepts only positive amounts. Lowering the bill below the user's
// expense clamps the expense down to the new bill.
func (s *SplitForm) SetBill(v float64) error {
	if s.state != SplitEditing {
		return ErrSessionClosed
	}
	if !(v > 0) {
		return ErrBillNotPositive
	}
	s.bill = v
	if v < s.paidByUser {
		s.paidByUser = v
	}
	return nil
}

// SetPaidByUser accepts amounts between 0 and the current bill, inclusive.
func (s *SplitForm) SetPaidByUser(v float64) error {
	if s.state != SplitEditing {
		return ErrSessionClosed
	}
	if !(v >= 0 && v <= s.bill) {
		return ErrPaidOutOfRange
	}
	s.paidByUser = v
	return nil
}

// SetPayer chooses who pays the bill.
func (s *SplitForm) SetPayer(p calculator.Payer) error {
	if s.state != SplitEditing {
		return ErrSessionClosed
	}
	if p != calculator.PayerUser && p != calculator.PayerFriend {
		return ErrUnknownPayer
	}
	s.payer = p
	return nil
}

// submit runs the submit transition. A zero bill fails validation and turns on
// the bill indicator for the rest of the session. Otherwise the outcome is
// handed to apply, when set, and the session only becomes terminal if apply
// succeeds.
func (s *SplitForm) submit(apply func(Outcome) error) (Outcome, error) {
	if s.state != SplitEditing {
		return Outcome{}, ErrSessionClosed
	}
	if s.bill == 0 {
		s.billInvalid = true
		return Outcome{}, ErrBillRequired
	}

	out := Outcome{FriendID: s.friendID}
	next := SplitSubmittedApplied
	if calculator.IsNoop(s.bill, s.paidByUser, s.payer) {
		out.Noop = true
		next = SplitSubmittedNoop
	} else {
		out.Delta = calculator.BalanceDelta(s.bill, s.paidByUser, s.payer)
	}

	if apply != nil {
		if err := apply(out); err != nil {
			return Outcome{}, err
		}
	}
	s.state = next
	return out, nil
}

// reopen starts a new editing session for the same friend carrying over the
// inputs, as the form stays on screen after a no-op split.
func (s *SplitForm) reopen() *SplitForm {
	next := *s
	next.state = SplitEditing
	return &next
}
