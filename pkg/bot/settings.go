package bot

import (
	"github.com/heraldbot/herald/pkg/bot/permissions"
)

// Settings is the process-wide configuration consulted during dispatch: the
// owner, the prefixes and the moderator-role resolver. One instance belongs
// to each Bot. Mutation is expected to be rare and serialized by the host
// relative to dispatch; Settings does no locking of its own.
type Settings struct {
	owner          permissions.Owner
	globalPrefixes []string
	guildPrefixes  map[string][]string
	moderatorRoles permissions.Resolver
}

func newSettings() *Settings {
	return &Settings{
		owner:          permissions.NoOne(),
		globalPrefixes: []string{""},
		guildPrefixes:  map[string][]string{},
		moderatorRoles: func(string) permissions.ModeratorRoles {
			return permissions.RoleList()
		},
	}
}

func (s *Settings) Owner() permissions.Owner {
	return s.owner
}

func (s *Settings) SetOwner(owner permissions.Owner) error {
	if !owner.IsAnyone() && !owner.IsNoOne() && owner.Id() == "" {
		return &ConfigurationError{Setting: "owner", Reason: "owner id cannot be empty"}
	}
	s.owner = owner
	return nil
}

// GlobalPrefixes returns a copy of the global prefix set, in order.
func (s *Settings) GlobalPrefixes() []string {
	return append([]string{}, s.globalPrefixes...)
}

// SetGlobalPrefixes replaces the global prefix set. Duplicates are collapsed,
// keeping the first occurrence. The empty string is a valid prefix, meaning
// no prefix is required; an empty set is not.
func (s *Settings) SetGlobalPrefixes(prefixes []string) error {
	set := dedupe(prefixes)
	if len(set) == 0 {
		return &ConfigurationError{Setting: "global prefixes", Reason: "at least one prefix is required"}
	}
	s.globalPrefixes = set
	return nil
}

// GuildPrefixes returns a copy of the guild's configured prefixes, empty when
// none are configured.
func (s *Settings) GuildPrefixes(guildId string) []string {
	return append([]string{}, s.guildPrefixes[guildId]...)
}

// SetGuildPrefixes replaces a guild's prefix set. An empty set removes the
// guild's entry entirely.
func (s *Settings) SetGuildPrefixes(guildId string, prefixes []string) error {
	if guildId == "" {
		return &ConfigurationError{Setting: "guild prefixes", Reason: "guild id cannot be empty"}
	}
	set := dedupe(prefixes)
	if len(set) == 0 {
		delete(s.guildPrefixes, guildId)
		return nil
	}
	s.guildPrefixes[guildId] = set
	return nil
}

// SetModeratorRoles installs the host's moderator-role resolver.
func (s *Settings) SetModeratorRoles(resolver permissions.Resolver) error {
	if resolver == nil {
		return &ConfigurationError{Setting: "moderator roles", Reason: "resolver cannot be nil"}
	}
	s.moderatorRoles = resolver
	return nil
}

// ModeratorRoles resolves a guild's moderator roles; direct messages get an
// empty role list.
func (s *Settings) ModeratorRoles(guildId string) permissions.ModeratorRoles {
	if guildId == "" {
		return permissions.RoleList()
	}
	return s.moderatorRoles(guildId)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return set
}
