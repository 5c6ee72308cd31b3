package worker

import (
	"context"

	"eventboard/internal/mailer"
	"eventboard/internal/queue"
	"eventboard/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	queue  queue.NotificationQueue
	mailer mailer.Mailer
}

func NewNotificationWorker(queue queue.NotificationQueue, mailer mailer.Mailer) NotificationWorker {
	return &NotificationWorkerImpl{
		queue:  queue,
		mailer: mailer,
	}
}

// Start consumes the notification queue until ctx is cancelled. Messages are
// processed sequentially; a failed send is logged and acked, never retried,
// so one recipient's failure cannot block the rest.
func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			email := msg.Data
			if err := w.mailer.Send(ctx, email.To, email.Subject, email.HTMLBody, email.AttachmentPath); err != nil {
				logger.WithComponent("worker").Error("sending email failed",
					zap.String("to", email.To), zap.Error(err))
			}
			msg.Ack()
		}
	}()
	return nil
}
