package command

import (
	"context"

	"github.com/heraldbot/herald/pkg/domain"
)

// Restrictions are the authorization flags shared by commands and tasks. The
// zero value is the default: no *Only restriction, usable in guilds and DMs,
// no bot traffic, no self-triggering.
type Restrictions struct {
	OwnerOnly bool
	AdminOnly bool
	ModOnly   bool
	// InGuilds and InDms default to true when left nil.
	InGuilds  *bool
	InDms     *bool
	AllowBots bool
	BotsOnly  bool
	AllowSelf bool
}

func (r Restrictions) AllowsGuilds() bool {
	return r.InGuilds == nil || *r.InGuilds
}

func (r Restrictions) AllowsDms() bool {
	return r.InDms == nil || *r.InDms
}

// RunFunc does the work of a command once it has matched and passed its
// permission checks.
type RunFunc func(ctx context.Context, message domain.Message, invocation *Invocation) error

// A Command is an explicitly prefixed, named instruction. Command is the
// primary name; it and every alias are trim+lowercase normalized at
// registration and must be unique across all registered commands. Definitions
// are immutable once registered.
type Command struct {
	Command     string
	Aliases     []string
	Description string
	Usage       string
	Disabled    bool
	Restrictions
	Run RunFunc
}

// Variations returns the strings the matcher recognizes for this command:
// the primary name first, then the aliases in declaration order.
func (c *Command) Variations() []string {
	return append([]string{c.Command}, c.Aliases...)
}

// An Invocation describes how a command was matched within a message. Offset
// is the index just past prefix and variation; Args is the remaining text,
// trimmed; Argv is Args split on runs of whitespace (empty when Args is "").
type Invocation struct {
	Variation string
	Prefix    string
	Offset    int
	Args      string
	Argv      []string
	Command   *Command
}
