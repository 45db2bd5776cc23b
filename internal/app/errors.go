package app

import "errors"

// Validation errors. A call that returns one of these has not changed any state.
var (
	ErrEmptyName       = errors.New("friend name required")
	ErrAddFriendClosed = errors.New("add friend form is not open")
	ErrUnknownFriend   = errors.New("friend not found")
	ErrNoSelection     = errors.New("no friend selected")
	ErrBillNotPositive = errors.New("bill must be above 0")
	ErrBillRequired    = errors.New("bill must be set before splitting")
	ErrPaidOutOfRange  = errors.New("expense must be between 0 and the bill")
	ErrUnknownPayer    = errors.New("unknown payer")
	ErrSessionClosed   = errors.New("split session already submitted")
	ErrBalanceOverflow = errors.New("balance out of range")
)
