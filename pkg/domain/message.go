package domain

import (
	"context"
	"fmt"
)

// A Member exposes what the engine needs to know about a guild member: the
// role ids they hold and whether the platform grants them the administrator
// capability.
type Member interface {
	RoleIds() []string
	IsAdministrator() bool
}

// A MemberResolver fetches the guild membership of a user. It stands in for
// whatever the host platform does to look up a member (API call, cache, ...).
type MemberResolver func(ctx context.Context, guildId string, user *User) (Member, error)

// A Message is an inbound chat message as seen by the engine. GuildId returns
// "" for direct messages. Member resolves the author's guild membership; it
// must only be called for guild messages and may suspend on the host platform.
type Message interface {
	Text() string
	Sender() *User
	GuildId() string
	Member(ctx context.Context) (Member, error)
	// ClientUser is the identity the bot itself is connected as, used to
	// recognize self-authored messages.
	ClientUser() *User
}

// StaticMember is a Member with fixed data, for hosts that already hold the
// membership and for tests.
type StaticMember struct {
	Roles []string
	Admin bool
}

func (m StaticMember) RoleIds() []string {
	return m.Roles
}

func (m StaticMember) IsAdministrator() bool {
	return m.Admin
}

// ChatMessage is the plain Message implementation. The member object is
// resolved lazily through the configured resolver and cached for the rest of
// the message's lifetime.
type ChatMessage struct {
	text     string
	sender   *User
	guildId  string
	client   *User
	resolver MemberResolver
	member   Member
}

func NewChatMessage(text string, sender *User, guildId string, client *User, resolver MemberResolver) *ChatMessage {
	return &ChatMessage{
		text:     text,
		sender:   sender,
		guildId:  guildId,
		client:   client,
		resolver: resolver,
	}
}

// NewDirectMessage is NewChatMessage for messages outside any guild.
func NewDirectMessage(text string, sender *User, client *User) *ChatMessage {
	return NewChatMessage(text, sender, "", client, nil)
}

func (m *ChatMessage) Text() string {
	return m.text
}

func (m *ChatMessage) Sender() *User {
	return m.sender
}

func (m *ChatMessage) GuildId() string {
	return m.guildId
}

func (m *ChatMessage) ClientUser() *User {
	return m.client
}

// WithMember pre-populates the membership, skipping the resolver entirely.
func (m *ChatMessage) WithMember(member Member) *ChatMessage {
	m.member = member
	return m
}

func (m *ChatMessage) Member(ctx context.Context) (Member, error) {
	if m.member != nil {
		return m.member, nil
	}
	if m.guildId == "" {
		return nil, fmt.Errorf("message is not from a guild")
	}
	if m.resolver == nil {
		return nil, fmt.Errorf("no member resolver configured")
	}
	member, err := m.resolver(ctx, m.guildId, m.sender)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve member of %s in %s: %w", m.sender.Nick(), m.guildId, err)
	}
	m.member = member
	return member, nil
}
