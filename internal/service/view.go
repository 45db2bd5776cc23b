package service

import (
	"fmt"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/calculator"
	"github.com/mmynk/friendsplit/internal/models"
)

// friendView is one row of the friend list.
type friendView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Balance  float64         `json:"balance"`
	Standing models.Standing `json:"standing"`
	Line     string          `json:"line"`
	Class    string          `json:"-"`
	Selected bool            `json:"selected"`
}

// splitView is the open split-bill form.
type splitView struct {
	FriendID    string   `json:"friend_id"`
	FriendName  string   `json:"friend_name"`
	Bill        float64  `json:"bill"`
	PaidByUser  float64  `json:"paid_by_user"`
	FriendShare *float64 `json:"friend_share"` // null while there is no bill
	ShareText   string   `json:"-"`
	Payer       string   `json:"who_is_paying"`
	BillInvalid bool     `json:"bill_invalid"`
	State       string   `json:"state"`
}

// messageView is the visible notification.
type messageView struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// pageView is everything the page renders; it is also the JSON state.
type pageView struct {
	Friends       []friendView       `json:"friends"`
	AddFriendOpen bool               `json:"add_friend_open"`
	Split         *splitView         `json:"split,omitempty"`
	Message       *messageView       `json:"message,omitempty"`
	Summary       calculator.Summary `json:"summary"`
	Currency      string             `json:"currency"`
}

// balanceLine renders the standing sentence of a friend.
func balanceLine(f models.Friend, currency string) (line, class string) {
	switch f.Standing() {
	case models.StandingYouOwe:
		return fmt.Sprintf("You owe %s %s%s", f.Name, models.FormatAmount(f.Owed()), currency), "red"
	case models.StandingOwesYou:
		return fmt.Sprintf("%s owes you %s%s", f.Name, models.FormatAmount(f.Owed()), currency), "green"
	default:
		return fmt.Sprintf("You and %s are even", f.Name), ""
	}
}

// buildPage snapshots st. It must run inside Session.Do.
func buildPage(st *app.State, currency string) pageView {
	friends := st.Friends()
	page := pageView{
		Friends:       make([]friendView, len(friends)),
		AddFriendOpen: st.AddFriendOpen(),
		Summary:       st.Summary(),
		Currency:      currency,
	}

	for i, f := range friends {
		line, class := balanceLine(f, currency)
		page.Friends[i] = friendView{
			ID:       f.ID,
			Name:     f.Name,
			Image:    f.Image,
			Balance:  f.Balance,
			Standing: f.Standing(),
			Line:     line,
			Class:    class,
			Selected: st.IsSelected(f.ID),
		}
	}

	if split, ok := st.Split(); ok {
		friend, _ := st.Selected()
		sv := &splitView{
			FriendID:    split.FriendID,
			FriendName:  friend.Name,
			Bill:        split.Bill,
			PaidByUser:  split.PaidByUser,
			Payer:       string(split.Payer),
			BillInvalid: split.BillInvalid,
			State:       split.State.String(),
		}
		if split.HasShare {
			share := split.FriendShare
			sv.FriendShare = &share
			sv.ShareText = models.FormatAmount(share)
		}
		page.Split = sv
	}

	if msg := st.Message(); msg.Visible {
		page.Message = &messageView{Success: msg.Success, Text: msg.Text()}
	}
	return page
}
