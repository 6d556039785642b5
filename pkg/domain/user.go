package domain

import "strings"

// A User identifies a message author or the bot's own client identity.
type User struct {
	nick string
	id   string
	bot  bool
}

func NewUser(nick string, id string, bot bool) *User {
	return &User{
		nick: nick,
		id:   id,
		bot:  bot,
	}
}

func (u *User) Nick() string {
	return u.nick
}

func (u *User) Id() string {
	return u.id
}

func (u *User) IsBot() bool {
	return u.bot
}

// Is reports whether both users designate the same account. Identity is the
// id when both sides have one, the nick otherwise.
func (u *User) Is(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	if u.id == "" && other.id == "" {
		return strings.EqualFold(u.nick, other.nick)
	}
	return u.id == other.id
}
