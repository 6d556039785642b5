package queue

import "github.com/heraldbot/herald/pkg/domain"

type Producer struct {
	id string
	q  producer
}

func (p *Producer) Produce(message domain.Message) error {
	return p.q.produce(p.id, message)
}

type producer interface {
	produce(id string, message domain.Message) error
}
