package app

import "fmt"

// Notification is the message shown after a split attempt until the user
// acknowledges it.
type Notification struct {
	Visible    bool
	Success    bool
	FriendName string
}

// Text returns the fixed message for the outcome.
func (n Notification) Text() string {
	if n.Success {
		return "Bill split successfully!"
	}
	if n.FriendName == "" {
		return "Splitting this bill won't affect your current balance."
	}
	return fmt.Sprintf("Splitting this bill won't affect your current balance with %s.", n.FriendName)
}

// Show makes the notification visible for the given outcome.
func (n *Notification) Show(success bool, friendName string) {
	n.Visible = true
	n.Success = success
	n.FriendName = friendName
}

// Dismiss hides the notification.
func (n *Notification) Dismiss() {
	n.Visible = false
}
