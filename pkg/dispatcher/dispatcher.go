package dispatcher

import (
	internal "github.com/heraldbot/herald/internal/pkg/dispatcher"
	"github.com/heraldbot/herald/pkg"
	"github.com/heraldbot/herald/pkg/bot"
	"github.com/heraldbot/herald/pkg/bot/command"
	botConfig "github.com/heraldbot/herald/pkg/config/bot"
	"github.com/heraldbot/herald/pkg/logging"
	"github.com/heraldbot/herald/pkg/queue"
)

// New wires a complete dispatcher: logger and engine from the configuration,
// the given command and task batches registered, and a consumer attached to
// the inbound queue. The returned Runnable processes messages until its
// consumer is cancelled or the host stops it.
func New(config botConfig.Config, inbound queue.Queue, commands []*command.Command, tasks []*command.Task) (pkg.Runnable, error) {
	log, err := logging.New(config.Log.Level, config.Log.Encoding)
	if err != nil {
		return nil, err
	}
	engine, err := bot.FromConfig(config, bot.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if _, err := engine.RegisterCommands(commands); err != nil {
		return nil, err
	}
	if _, err := engine.RegisterTasks(tasks); err != nil {
		return nil, err
	}
	consumer, err := inbound.NewConsumer()
	if err != nil {
		return nil, err
	}
	return internal.New(engine, consumer, log), nil
}
