package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/heraldbot/herald/pkg/domain"
)

// A Queue fans inbound messages out to its consumers: every consumer sees
// every message produced after it was created. Producers never block;
// consumers block until a message arrives or their context ends.
type Queue interface {
	producer
	consumer
	NewProducer() (*Producer, error)
	NewConsumer() (*Consumer, error)
}

type queue struct {
	m            *sync.Mutex
	c            *sync.Cond
	maxConsumers int
	maxProducers int
	producers    map[string]struct{}
	buffers      map[string][]domain.Message
}

func (q *queue) NewProducer() (*Producer, error) {
	q.m.Lock()
	defer q.m.Unlock()
	if q.maxProducers > 0 && len(q.producers) == q.maxProducers {
		return nil, fmt.Errorf("too many producers")
	}
	id := uuid.NewString()
	q.producers[id] = struct{}{}
	return &Producer{
		id: id,
		q:  q,
	}, nil
}

func (q *queue) NewConsumer() (*Consumer, error) {
	q.m.Lock()
	defer q.m.Unlock()
	if q.maxConsumers > 0 && len(q.buffers) == q.maxConsumers {
		return nil, fmt.Errorf("too many consumers")
	}
	id := uuid.NewString()
	q.buffers[id] = []domain.Message{}
	return &Consumer{
		id: id,
		q:  q,
	}, nil
}

func (q *queue) produce(id string, message domain.Message) error {
	q.m.Lock()
	defer q.m.Unlock()
	if _, ok := q.producers[id]; !ok {
		return fmt.Errorf("unknown producer")
	}
	for consumerId := range q.buffers {
		q.buffers[consumerId] = append(q.buffers[consumerId], message)
	}
	q.c.Broadcast()
	return nil
}

func (q *queue) consume(ctx context.Context, id string) (domain.Message, error) {
	wakeup := make(chan struct{})
	defer close(wakeup)
	go func() {
		select {
		case <-ctx.Done():
			q.m.Lock()
			q.c.Broadcast()
			q.m.Unlock()
		case <-wakeup:
		}
	}()
	q.m.Lock()
	defer q.m.Unlock()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buffer, ok := q.buffers[id]
		if !ok {
			return nil, fmt.Errorf("not a registered consumer")
		}
		if len(buffer) > 0 {
			message := buffer[0]
			q.buffers[id] = buffer[1:]
			return message, nil
		}
		q.c.Wait()
	}
}

func (q *queue) cancel(id string) {
	q.m.Lock()
	defer q.m.Unlock()
	delete(q.buffers, id)
	q.c.Broadcast()
}

func newQueue() *queue {
	m := &sync.Mutex{}
	return &queue{
		m:         m,
		c:         sync.NewCond(m),
		producers: map[string]struct{}{},
		buffers:   map[string][]domain.Message{},
	}
}

func NewQueue(options ...Option) Queue {
	q := newQueue()
	for _, option := range options {
		option.Apply(q)
	}
	return q
}
