package queue

import (
	"context"

	"eventboard/internal/model"
)

type Delivery struct {
	Data *model.EmailMessage
	Ack  func()
	Nack func(requeue bool)
}

// NotificationQueue decouples HTTP request handling from email delivery:
// handlers publish and redirect, a worker consumes. Publish never waits for
// delivery.
type NotificationQueue interface {
	Publish(ctx context.Context, msg *model.EmailMessage) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryNotificationQueueImpl is the in-process channel driver, also used in
// tests.
type MemoryNotificationQueueImpl struct {
	ch chan *model.EmailMessage
}

func NewMemoryNotificationQueue(bufferSize int) NotificationQueue {
	return &MemoryNotificationQueueImpl{
		ch: make(chan *model.EmailMessage, bufferSize),
	}
}

func (q *MemoryNotificationQueueImpl) Publish(ctx context.Context, msg *model.EmailMessage) error {
	q.ch <- msg
	return nil
}

func (q *MemoryNotificationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: msg,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- msg
						}
					},
				}
			}
		}
	}()

	return out, nil
}
