package bot

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heraldbot/herald/pkg/bot/command"
	"github.com/heraldbot/herald/pkg/bot/permissions"
	"github.com/heraldbot/herald/pkg/domain"
)

// A CommandMatch is the definitive outcome of matching one message against
// the registered commands. Matched distinguishes hit from miss; Checks tells
// a caller whether a hit was actually executed or denied.
type CommandMatch struct {
	Matched   bool
	Variation string
	Prefix    string
	Checks    permissions.Checks
	Command   *command.Command
}

// CheckCommand searches prefix x command x variation combinations, outermost
// prefixes first, commands in registry order, primary name before aliases.
// The first combination where the message starts with prefix+variation
// followed by whitespace or end-of-text wins; no backtracking. On a hit the
// author's membership is resolved (guild messages), permissions are evaluated
// and, only if they pass, the command's run action is invoked. Run-action and
// membership-resolution errors come back alongside the match result.
func (b *Bot) CheckCommand(ctx context.Context, message domain.Message) (*CommandMatch, error) {
	text := message.Text()
	prefixes := b.settings.GlobalPrefixes()
	if guildId := message.GuildId(); guildId != "" {
		prefixes = append(prefixes, b.settings.GuildPrefixes(guildId)...)
	}
	for _, prefix := range prefixes {
		for _, c := range b.registry.commands {
			for _, variation := range c.Variations() {
				if !matchesAt(text, prefix+variation) {
					continue
				}
				return b.matched(ctx, message, c, variation, prefix)
			}
		}
	}
	return &CommandMatch{}, nil
}

// matchesAt reports whether text starts with needle, case-insensitively, with
// a whitespace-or-end boundary right after ("!ban" must not match "!banana").
func matchesAt(text string, needle string) bool {
	if len(text) < len(needle) || !strings.EqualFold(text[:len(needle)], needle) {
		return false
	}
	if len(text) == len(needle) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[len(needle):])
	return unicode.IsSpace(next)
}

func (b *Bot) matched(ctx context.Context, message domain.Message, c *command.Command, variation string, prefix string) (*CommandMatch, error) {
	match := &CommandMatch{
		Matched:   true,
		Variation: variation,
		Prefix:    prefix,
		Command:   c,
	}
	if message.GuildId() != "" {
		if _, err := message.Member(ctx); err != nil {
			return match, err
		}
	}
	checks, err := b.checkPermissions(ctx, c.Restrictions, message)
	if err != nil {
		return match, err
	}
	match.Checks = checks
	if !checks.Pass() {
		b.log.Debugw("command denied",
			"command", c.Command,
			"variation", variation,
			"sender", message.Sender().Nick(),
		)
		return match, nil
	}
	offset := len(prefix) + len(variation)
	args := strings.TrimSpace(message.Text()[offset:])
	invocation := &command.Invocation{
		Variation: variation,
		Prefix:    prefix,
		Offset:    offset,
		Args:      args,
		Argv:      strings.Fields(args),
		Command:   c,
	}
	b.log.Debugw("command matched", "command", c.Command, "variation", variation, "args", args)
	if err := c.Run(ctx, message, invocation); err != nil {
		return match, err
	}
	return match, nil
}
