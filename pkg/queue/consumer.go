package queue

import (
	"context"

	"github.com/heraldbot/herald/pkg/domain"
)

type Consumer struct {
	id string
	q  consumer
}

// Consume blocks until a message is available or ctx ends. A cancelled
// consumer stays cancelled; further calls fail.
func (c *Consumer) Consume(ctx context.Context) (domain.Message, error) {
	return c.q.consume(ctx, c.id)
}

func (c *Consumer) Cancel() {
	c.q.cancel(c.id)
}

type consumer interface {
	consume(ctx context.Context, id string) (domain.Message, error)
	cancel(id string)
}
