// Package models defines the core domain models for friendsplit.
//
// # Models
//
//   - Friend: one person the user splits bills with, carrying a running balance
//   - Standing: classification of a balance (you owe, owes you, even)
//
// # Balance sign convention
//
// A Friend's Balance is always expressed from the user's point of view:
//
//	balance < 0   the user owes the friend |balance|
//	balance > 0   the friend owes the user balance
//	balance == 0  settled
//
// # Design Principles
//
//  1. Friends are plain values. Updates replace a friend with a modified copy.
//  2. Relationships use ID strings instead of pointers (selection, sessions).
//  3. Derived values (standing, magnitude) are computed, never stored.
package models
