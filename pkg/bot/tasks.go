package bot

import (
	"context"
	"fmt"

	"github.com/heraldbot/herald/pkg/bot/command"
	"github.com/heraldbot/herald/pkg/domain"
)

// A TaskBatch is the outcome of one task-selection pass: the partition of all
// registered tasks for the message, and whether anything matched at all.
type TaskBatch struct {
	Match       bool
	Matching    []*command.Task
	NotMatching []*command.Task
}

// CheckTasks evaluates every registered task against the message, in sorted
// order, and partitions them. A task matches when its test passes, its
// permission checks pass and, if it is limited, no limited task has matched
// earlier in the pass (excludeLimited shuts limited tasks out entirely). The
// partition is completed before any run action starts; matching tasks then
// run one after another, each receiving the full batch. A run-action error
// aborts the rest of the run loop and is returned with the batch.
func (b *Bot) CheckTasks(ctx context.Context, message domain.Message, excludeLimited bool) (*TaskBatch, error) {
	batch := &command.Batch{
		Matching:    []*command.Task{},
		NotMatching: []*command.Task{},
	}
	limitedTaken := excludeLimited
	for _, t := range b.registry.tasks {
		matches := b.testTask(t, message)
		if matches {
			checks, err := b.checkPermissions(ctx, t.Restrictions, message)
			if err != nil {
				b.log.Warnw("task permission evaluation failed", "task", t.Name, "error", err)
				matches = false
			} else {
				matches = checks.Pass()
			}
		}
		if matches && t.Limited {
			if limitedTaken {
				matches = false
			} else {
				limitedTaken = true
			}
		}
		if matches {
			batch.Matching = append(batch.Matching, t)
		} else {
			batch.NotMatching = append(batch.NotMatching, t)
		}
	}
	result := &TaskBatch{
		Match:       len(batch.Matching) > 0,
		Matching:    batch.Matching,
		NotMatching: batch.NotMatching,
	}
	for _, t := range batch.Matching {
		if err := t.Run(ctx, message, batch); err != nil {
			return result, fmt.Errorf("task %s: %w", t.Name, err)
		}
	}
	return result, nil
}

// testTask is the sole recovery boundary around task test predicates: a
// predicate that errors or panics counts as a false result and must never
// abort dispatch for the other tasks.
func (b *Bot) testTask(t *command.Task, message domain.Message) (matches bool) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warnw("task test panicked", "task", t.Name, "panic", r)
			matches = false
		}
	}()
	matches, err := t.Test(message)
	if err != nil {
		b.log.Debugw("task test failed", "task", t.Name, "error", err)
		return false
	}
	return matches
}
