package dispatcher

import (
	"context"
	"sync"

	"github.com/heraldbot/herald/pkg/bot"
	"github.com/heraldbot/herald/pkg/domain"
	"github.com/heraldbot/herald/pkg/queue"
	"go.uber.org/zap"
)

// Dispatcher consumes inbound messages from a queue and applies the engine's
// control flow to each in turn: command matching first, task selection when
// no command matched. One message is processed to completion before the next
// is consumed.
type Dispatcher struct {
	engine   *bot.Bot
	consumer *queue.Consumer
	log      *zap.SugaredLogger
	ctx      context.Context
	cancel   context.CancelFunc
	m        sync.Mutex
	err      error
}

func New(engine *bot.Bot, consumer *queue.Consumer, log *zap.SugaredLogger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		engine:   engine,
		consumer: consumer,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (d *Dispatcher) Start() error {
	go d.loop()
	return nil
}

// Stop ends the dispatch loop and cancels the queue consumer.
func (d *Dispatcher) Stop() {
	d.cancel()
	d.consumer.Cancel()
}

func (d *Dispatcher) Done() <-chan struct{} {
	return d.ctx.Done()
}

func (d *Dispatcher) Err() error {
	d.m.Lock()
	defer d.m.Unlock()
	if d.err == context.Canceled {
		return nil
	}
	return d.err
}

func (d *Dispatcher) fail(err error) {
	d.m.Lock()
	d.err = err
	d.m.Unlock()
	d.cancel()
}

func (d *Dispatcher) loop() {
	for {
		message, err := d.consumer.Consume(d.ctx)
		if err != nil {
			d.fail(err)
			return
		}
		d.dispatch(message)
	}
}

// dispatch never fails the loop: run-action errors are the host's retry/log
// policy, and here the policy is to log and move on to the next message.
func (d *Dispatcher) dispatch(message domain.Message) {
	match, err := d.engine.CheckCommand(d.ctx, message)
	if err != nil {
		name := ""
		if match.Command != nil {
			name = match.Command.Command
		}
		d.log.Errorw("command dispatch failed", "command", name, "error", err)
	}
	if match.Matched {
		return
	}
	batch, err := d.engine.CheckTasks(d.ctx, message, false)
	if err != nil {
		d.log.Errorw("task dispatch failed", "error", err)
	}
	if batch.Match {
		d.log.Debugw("tasks dispatched", "matching", len(batch.Matching), "notMatching", len(batch.NotMatching))
	}
}
