// Package app holds the application state of one friendsplit page session:
// the friend registry, the selection, the add-friend form, the split-bill
// session and the notification.
//
// State is not safe for concurrent use. Callers that share one State across
// goroutines must serialize access (see storage.Session).
package app

import (
	"fmt"

	"github.com/mmynk/friendsplit/internal/calculator"
	"github.com/mmynk/friendsplit/internal/models"
)

// Options configures a State.
type Options struct {
	// NewID generates friend identities. Defaults to uuid.NewString.
	NewID func() string

	// Avatar derives the avatar reference from an identity.
	// Defaults to AvatarBuilder(DefaultAvatarURL).
	Avatar func(id string) string

	// SelectFirst selects the first seeded friend on creation.
	SelectFirst bool

	// ShowNotifications makes split submits raise the notification.
	ShowNotifications bool

	// CloseOnNoop clears the selection after a no-op split, like an applied one.
	CloseOnNoop bool
}

// SplitView is a read-only snapshot of the open split session.
type SplitView struct {
	FriendID    string
	Bill        float64
	PaidByUser  float64
	FriendShare float64
	HasShare    bool
	Payer       calculator.Payer
	BillInvalid bool
	State       SplitState
}

// State is the explicit application state container. All mutations go
// through its methods.
type State struct {
	opts      Options
	registry  *Registry
	selection Selection
	addFriend *AddFriendForm
	split     *SplitForm
	message   Notification
}

// New creates a State seeded with the given friends.
func New(seed []models.Friend, opts Options) *State {
	s := &State{
		opts:      opts,
		registry:  NewRegistry(seed),
		addFriend: newAddFriendForm(opts.NewID, opts.Avatar),
	}
	if opts.SelectFirst && len(seed) > 0 {
		s.selection.Select(seed[0])
		s.split = newSplitForm(seed[0].ID)
	}
	return s
}

// Friends returns the friend list in order.
func (s *State) Friends() []models.Friend {
	return s.registry.List()
}

// Summary returns the balance totals across all friends.
func (s *State) Summary() calculator.Summary {
	return calculator.Summarize(s.registry.List())
}

// Selected returns the selected friend, if any.
func (s *State) Selected() (models.Friend, bool) {
	id, ok := s.selection.ID()
	if !ok {
		return models.Friend{}, false
	}
	return s.registry.Get(id)
}

// IsSelected reports whether the friend with the given id is selected.
func (s *State) IsSelected(id string) bool {
	return s.selection.Is(id)
}

// AddFriendOpen reports whether the add-friend form is shown.
func (s *State) AddFriendOpen() bool {
	return s.addFriend.IsOpen()
}

// ToggleAddFriend opens or closes the add-friend form.
func (s *State) ToggleAddFriend() {
	s.addFriend.Toggle()
}

// AddFriend validates rawName and appends the new friend to the registry.
func (s *State) AddFriend(rawName string) (models.Friend, error) {
	f, err := s.addFriend.Submit(rawName)
	if err != nil {
		return models.Friend{}, err
	}
	s.registry.Add(f)
	return f, nil
}

// Select toggles the selection of the friend with the given id. Any change
// closes the add-friend form and discards the split session; a new selection
// opens a fresh one. It reports whether a friend is selected afterwards.
func (s *State) Select(id string) (bool, error) {
	f, ok := s.registry.Get(id)
	if !ok {
		return false, fmt.Errorf("select %s: %w", id, ErrUnknownFriend)
	}

	selected := s.selection.Select(f)
	s.split = nil
	if selected {
		s.split = newSplitForm(f.ID)
	}
	s.addFriend.Close()
	return selected, nil
}

// Split returns a snapshot of the open split session.
func (s *State) Split() (SplitView, bool) {
	if s.split == nil {
		return SplitView{}, false
	}
	share, hasShare := s.split.FriendShare()
	return SplitView{
		FriendID:    s.split.FriendID(),
		Bill:        s.split.Bill(),
		PaidByUser:  s.split.PaidByUser(),
		FriendShare: share,
		HasShare:    hasShare,
		Payer:       s.split.Payer(),
		BillInvalid: s.split.BillInvalid(),
		State:       s.split.State(),
	}, true
}

// SetBill updates the bill of the open split session.
func (s *State) SetBill(v float64) error {
	if s.split == nil {
		return ErrNoSelection
	}
	return s.split.SetBill(v)
}

// SetPaidByUser updates the user's expense of the open split session.
func (s *State) SetPaidByUser(v float64) error {
	if s.split == nil {
		return ErrNoSelection
	}
	return s.split.SetPaidByUser(v)
}

// SetPayer updates who pays in the open split session.
func (s *State) SetPayer(p calculator.Payer) error {
	if s.split == nil {
		return ErrNoSelection
	}
	return s.split.SetPayer(p)
}

// SubmitSplit submits the open split session.
//
// A zero bill fails with ErrBillRequired and changes nothing but the bill
// indicator. A no-op split leaves balances untouched and, unless CloseOnNoop
// is set, keeps the form open with its inputs. Any other split applies the
// delta to the selected friend and clears the selection.
func (s *State) SubmitSplit() (Outcome, error) {
	if s.split == nil {
		return Outcome{}, ErrNoSelection
	}

	friend, ok := s.registry.Get(s.split.FriendID())
	if !ok {
		return Outcome{}, fmt.Errorf("submit split %s: %w", s.split.FriendID(), ErrUnknownFriend)
	}

	out, err := s.split.submit(func(o Outcome) error {
		if o.Noop {
			return nil
		}
		_, err := s.registry.UpdateBalance(o.FriendID, o.Delta)
		return err
	})
	if err != nil {
		return Outcome{}, err
	}

	if out.Noop {
		if s.opts.CloseOnNoop {
			s.selection.Clear()
			s.split = nil
		} else {
			s.split = s.split.reopen()
		}
		if s.opts.ShowNotifications {
			s.message.Show(false, friend.Name)
		}
		return out, nil
	}

	s.selection.Clear()
	s.split = nil
	if s.opts.ShowNotifications {
		s.message.Show(true, friend.Name)
	}
	return out, nil
}

// Message returns the current notification.
func (s *State) Message() Notification {
	return s.message
}

// DismissMessage hides the notification.
func (s *State) DismissMessage() {
	s.message.Dismiss()
}
