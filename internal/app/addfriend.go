package app

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmynk/friendsplit/internal/models"
)

// MaxNameLength is the longest display name, in characters, the form accepts.
const MaxNameLength = 10

// DefaultAvatarURL is the avatar template used when none is configured.
// {id} is replaced by the query-escaped friend identity.
const DefaultAvatarURL = "https://i.pravatar.cc/48?{id}"

// NormalizeName keeps at most MaxNameLength characters of raw, as the input
// field does, trims surrounding whitespace, then uppercases the first
// character and lowercases the rest.
func NormalizeName(raw string) string {
	name := raw
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	// A Caser is stateful, so each call gets its own.
	return string(unicode.ToUpper(first)) + cases.Lower(language.Und).String(name[size:])
}

// AvatarBuilder returns a function deriving the avatar reference of a friend
// from its identity using the given template.
func AvatarBuilder(template string) func(id string) string {
	if template == "" {
		template = DefaultAvatarURL
	}
	return func(id string) string {
		return strings.ReplaceAll(template, "{id}", url.QueryEscape(id))
	}
}

// AddFriendForm holds the open/closed state of the add-friend form and builds
// new friend records.
type AddFriendForm struct {
	open   bool
	newID  func() string
	avatar func(id string) string
}

func newAddFriendForm(newID func() string, avatar func(string) string) *AddFriendForm {
	if newID == nil {
		newID = uuid.NewString
	}
	if avatar == nil {
		avatar = AvatarBuilder(DefaultAvatarURL)
	}
	return &AddFriendForm{newID: newID, avatar: avatar}
}

// IsOpen reports whether the form is shown.
func (f *AddFriendForm) IsOpen() bool { return f.open }

// Toggle flips the form between open and closed.
func (f *AddFriendForm) Toggle() { f.open = !f.open }

// Open shows the form.
func (f *AddFriendForm) Open() { f.open = true }

// Close hides the form.
func (f *AddFriendForm) Close() { f.open = false }

// Submit validates rawName and emits a new friend with a zero balance.
// On success the form closes; on failure it stays as it was.
func (f *AddFriendForm) Submit(rawName string) (models.Friend, error) {
	if !f.open {
		return models.Friend{}, ErrAddFriendClosed
	}
	name := NormalizeName(rawName)
	if name == "" {
		return models.Friend{}, ErrEmptyName
	}

	id := f.newID()
	friend := models.Friend{
		ID:      id,
		Name:    name,
		Image:   f.avatar(id),
		Balance: 0,
	}
	f.open = false
	return friend, nil
}
