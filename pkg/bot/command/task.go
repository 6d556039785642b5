package command

import (
	"context"

	"github.com/heraldbot/herald/pkg/domain"
)

// TestFunc decides whether a task fires for a message. A returned error, like
// a panic, is treated by the selector as a false result.
type TestFunc func(message domain.Message) (bool, error)

// TaskRunFunc does the work of a task that made it into the matching set. The
// batch lets a task observe what else fired for the same message.
type TaskRunFunc func(ctx context.Context, message domain.Message, batch *Batch) error

// A Task is an ambient trigger evaluated against every message. Name is its
// unique identity, compared verbatim. A limited task is mutually exclusive
// with every other limited task for a given message: at most one fires, by
// sorted-name precedence.
type Task struct {
	Name     string
	Disabled bool
	Limited  bool
	Restrictions
	Test TestFunc
	Run  TaskRunFunc
}

// A Batch is the partition of registered tasks for one message, shared by
// every matching task's run action.
type Batch struct {
	Matching    []*Task
	NotMatching []*Task
}
