package bot

import (
	"context"

	"github.com/heraldbot/herald/pkg/bot/command"
	"github.com/heraldbot/herald/pkg/bot/permissions"
	"github.com/heraldbot/herald/pkg/domain"
)

// CheckCommandPermissions evaluates all six permission checks for a command
// against a message.
func (b *Bot) CheckCommandPermissions(ctx context.Context, c *command.Command, message domain.Message) (permissions.Checks, error) {
	return b.checkPermissions(ctx, c.Restrictions, message)
}

// CheckTaskPermissions evaluates all six permission checks for a task against
// a message.
func (b *Bot) CheckTaskPermissions(ctx context.Context, t *command.Task, message domain.Message) (permissions.Checks, error) {
	return b.checkPermissions(ctx, t.Restrictions, message)
}

// checkPermissions is the evaluator shared by commands and tasks. All six
// sub-checks are always computed; the only side effects are the moderator-role
// lookup (once per guild evaluation) and, when an *Only flag demands it,
// membership resolution. The returned error is a membership-resolution
// failure only.
func (b *Bot) checkPermissions(ctx context.Context, r command.Restrictions, message domain.Message) (permissions.Checks, error) {
	var checks permissions.Checks
	sender := message.Sender()
	client := message.ClientUser()
	inGuild := message.GuildId() != ""

	moderators := permissions.RoleList()
	if inGuild {
		moderators = b.settings.ModeratorRoles(message.GuildId())
	}

	var member domain.Member
	if inGuild && (r.AdminOnly || r.ModOnly) {
		var err error
		member, err = message.Member(ctx)
		if err != nil {
			return checks, err
		}
	}
	isAdmin := member != nil && member.IsAdministrator()

	checks.Admin = !r.AdminOnly || (inGuild && isAdmin)
	checks.Mod = !r.ModOnly || (inGuild && (isAdmin || moderators.All() || moderators.Contains(member.RoleIds())))
	if sender.IsBot() {
		checks.Bot = r.AllowBots || r.BotsOnly || sender.Is(client)
	} else {
		checks.Bot = !r.BotsOnly
	}
	checks.ChannelType = (inGuild && r.AllowsGuilds()) || (!inGuild && r.AllowsDms())
	checks.Owner = !r.OwnerOnly || b.settings.Owner().Matches(sender.Id())
	checks.Self = !sender.Is(client) || r.AllowSelf
	return checks, nil
}
