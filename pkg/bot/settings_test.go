package bot

import (
	"testing"

	"github.com/heraldbot/herald/pkg/bot/permissions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalPrefixesRoundTrip(t *testing.T) {
	s := newSettings()
	assert.Equal(t, []string{""}, s.GlobalPrefixes())

	require.NoError(t, s.SetGlobalPrefixes([]string{"!", "?", "!"}))
	assert.Equal(t, []string{"!", "?"}, s.GlobalPrefixes())
}

func TestGlobalPrefixesEmptySetRejected(t *testing.T) {
	s := newSettings()
	err := s.SetGlobalPrefixes([]string{})
	var configuration *ConfigurationError
	require.ErrorAs(t, err, &configuration)
	// unchanged
	assert.Equal(t, []string{""}, s.GlobalPrefixes())
}

func TestGlobalPrefixesCopyOnRead(t *testing.T) {
	s := newSettings()
	require.NoError(t, s.SetGlobalPrefixes([]string{"!"}))
	got := s.GlobalPrefixes()
	got[0] = "?"
	assert.Equal(t, []string{"!"}, s.GlobalPrefixes())
}

func TestGuildPrefixesRoundTrip(t *testing.T) {
	s := newSettings()
	require.NoError(t, s.SetGuildPrefixes("g1", []string{".", ".", ";"}))
	assert.Equal(t, []string{".", ";"}, s.GuildPrefixes("g1"))
	assert.Empty(t, s.GuildPrefixes("g2"))

	// an empty set removes the entry entirely
	require.NoError(t, s.SetGuildPrefixes("g1", []string{}))
	assert.Empty(t, s.GuildPrefixes("g1"))
	assert.NotContains(t, s.guildPrefixes, "g1")
}

func TestGuildPrefixesEmptyGuildRejected(t *testing.T) {
	s := newSettings()
	err := s.SetGuildPrefixes("", []string{"!"})
	var configuration *ConfigurationError
	require.ErrorAs(t, err, &configuration)
}

func TestSetOwner(t *testing.T) {
	s := newSettings()
	assert.True(t, s.Owner().IsNoOne())

	require.NoError(t, s.SetOwner(permissions.Id("42")))
	assert.True(t, s.Owner().Matches("42"))
	assert.False(t, s.Owner().Matches("43"))

	require.NoError(t, s.SetOwner(permissions.Anyone()))
	assert.True(t, s.Owner().Matches("anybody at all"))

	err := s.SetOwner(permissions.Id(""))
	var configuration *ConfigurationError
	require.ErrorAs(t, err, &configuration)
	assert.True(t, s.Owner().IsAnyone())
}

func TestModeratorRoles(t *testing.T) {
	s := newSettings()
	// default: no moderator roles anywhere
	assert.False(t, s.ModeratorRoles("g1").Contains([]string{"r1"}))

	require.NoError(t, s.SetModeratorRoles(func(guildId string) permissions.ModeratorRoles {
		if guildId == "g1" {
			return permissions.RoleList("r1", "r2")
		}
		return permissions.AllRoles()
	}))
	assert.True(t, s.ModeratorRoles("g1").Contains([]string{"r2"}))
	assert.False(t, s.ModeratorRoles("g1").Contains([]string{"r3"}))
	assert.True(t, s.ModeratorRoles("g2").All())
	// direct messages always get an empty role list
	assert.False(t, s.ModeratorRoles("").All())
	assert.False(t, s.ModeratorRoles("").Contains([]string{"r1"}))

	err := s.SetModeratorRoles(nil)
	var configuration *ConfigurationError
	require.ErrorAs(t, err, &configuration)
}
