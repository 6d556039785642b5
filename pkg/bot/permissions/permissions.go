package permissions

// Checks is the outcome of one permission evaluation: the six independent
// sub-checks computed for a command or task against a message. A fresh value
// is produced per evaluation and never stored.
type Checks struct {
	Admin       bool
	Mod         bool
	Bot         bool
	ChannelType bool
	Owner       bool
	Self        bool
}

// Pass reports the conjunction of all six sub-checks.
func (c Checks) Pass() bool {
	return c.Admin && c.Mod && c.Bot && c.ChannelType && c.Owner && c.Self
}

type ownerKind int

const (
	ownerNoOne ownerKind = iota
	ownerAnyone
	ownerId
)

// Owner is the owner-id setting: nobody, anybody, or one specific user id.
type Owner struct {
	kind ownerKind
	id   string
}

// NoOne is the Owner under which no user passes owner-only checks.
func NoOne() Owner {
	return Owner{kind: ownerNoOne}
}

// Anyone is the Owner under which every user passes owner-only checks.
func Anyone() Owner {
	return Owner{kind: ownerAnyone}
}

// Id is the Owner designating a single user id.
func Id(id string) Owner {
	return Owner{kind: ownerId, id: id}
}

func (o Owner) IsAnyone() bool {
	return o.kind == ownerAnyone
}

func (o Owner) IsNoOne() bool {
	return o.kind == ownerNoOne
}

func (o Owner) Id() string {
	return o.id
}

// Matches reports whether the given user id passes an owner-only check.
func (o Owner) Matches(userId string) bool {
	switch o.kind {
	case ownerAnyone:
		return true
	case ownerId:
		return o.id == userId
	default:
		return false
	}
}

// ModeratorRoles is a moderator-role lookup result: either every role counts
// as moderator, or a concrete list of role ids does.
type ModeratorRoles struct {
	all bool
	ids []string
}

func AllRoles() ModeratorRoles {
	return ModeratorRoles{all: true}
}

func RoleList(ids ...string) ModeratorRoles {
	return ModeratorRoles{ids: ids}
}

func (m ModeratorRoles) All() bool {
	return m.all
}

func (m ModeratorRoles) Ids() []string {
	return m.ids
}

// Contains reports whether any of the given role ids is a moderator role.
func (m ModeratorRoles) Contains(roleIds []string) bool {
	if m.all {
		return len(roleIds) > 0
	}
	for _, id := range m.ids {
		for _, held := range roleIds {
			if id == held {
				return true
			}
		}
	}
	return false
}

// A Resolver maps a guild id to that guild's moderator roles. Hosts supply
// one through the engine settings; the engine calls it once per evaluation.
type Resolver func(guildId string) ModeratorRoles
