package bot

import (
	"strings"

	"github.com/heraldbot/herald/pkg/bot/command"
	"github.com/heraldbot/herald/pkg/bot/permissions"
	botConfig "github.com/heraldbot/herald/pkg/config/bot"
	"go.uber.org/zap"
)

// Bot is one independent dispatch engine: its own registry, its own settings.
// Several instances can coexist in a process without cross-talk. Registration
// and settings mutation are expected to happen before message dispatch starts;
// neither is synchronized against concurrent dispatch.
type Bot struct {
	settings *Settings
	registry *registry
	disabled map[string]bool
	log      *zap.SugaredLogger
}

type Option interface {
	Apply(b *Bot)
}

type optionFunc func(*Bot)

func (f optionFunc) Apply(b *Bot) {
	f(b)
}

// WithLogger replaces the default no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return optionFunc(func(b *Bot) {
		b.log = log
	})
}

func New(options ...Option) *Bot {
	b := &Bot{
		settings: newSettings(),
		registry: newRegistry(),
		disabled: map[string]bool{},
		log:      zap.NewNop().Sugar(),
	}
	for _, option := range options {
		option.Apply(b)
	}
	return b
}

// FromConfig builds a Bot and applies the prefix, owner and disabled-command
// configuration to it.
func FromConfig(config botConfig.Config, options ...Option) (*Bot, error) {
	b := New(options...)
	if len(config.Prefixes) > 0 {
		if err := b.settings.SetGlobalPrefixes(config.Prefixes); err != nil {
			return nil, err
		}
	}
	for guildId, prefixes := range config.GuildPrefixes {
		if err := b.settings.SetGuildPrefixes(guildId, prefixes); err != nil {
			return nil, err
		}
	}
	switch config.Owner {
	case "":
		// no owner
	case botConfig.OwnerAnyone:
		if err := b.settings.SetOwner(permissions.Anyone()); err != nil {
			return nil, err
		}
	default:
		if err := b.settings.SetOwner(permissions.Id(config.Owner)); err != nil {
			return nil, err
		}
	}
	for name, disabled := range config.Commands.Disabled {
		if disabled {
			b.disabled[strings.ToLower(strings.TrimSpace(name))] = true
		}
	}
	return b, nil
}

func (b *Bot) Settings() *Settings {
	return b.settings
}

// RegisterCommands registers a batch of command definitions, all-or-nothing.
func (b *Bot) RegisterCommands(batch []*command.Command) (RegistrationResult, error) {
	result, err := b.registry.registerCommands(batch, b.disabled)
	if err != nil {
		return result, err
	}
	b.log.Infow("commands registered", "registered", result.Registered, "disabled", result.Disabled)
	return result, nil
}

// RegisterTasks registers a batch of task definitions, all-or-nothing.
func (b *Bot) RegisterTasks(batch []*command.Task) (RegistrationResult, error) {
	result, err := b.registry.registerTasks(batch, b.disabled)
	if err != nil {
		return result, err
	}
	b.log.Infow("tasks registered", "registered", result.Registered, "disabled", result.Disabled)
	return result, nil
}

// Commands returns the registered commands in matching order.
func (b *Bot) Commands() []*command.Command {
	return append([]*command.Command{}, b.registry.commands...)
}

// Command returns the registered command answering to the given name or
// alias, nil when there is none.
func (b *Bot) Command(name string) *command.Command {
	return command.Find(b.registry.commands, name)
}

// Tasks returns the registered tasks in sorted order.
func (b *Bot) Tasks() []*command.Task {
	return append([]*command.Task{}, b.registry.tasks...)
}
