package message

import (
	"context"

	"github.com/placemarks-app/placemarks/pkg/log"
	"github.com/placemarks-app/placemarks/pkg/worker"
)

// Listener pumps consumed messages into the handler, acking on success and
// nacking on failure so the broker redelivers the message later.
type Listener struct {
	consumer Consumer
	handler  Handler
	logger   log.Logger
}

func NewListener(consumer Consumer, handler Handler, logger log.Logger) *Listener {
	return &Listener{
		consumer: consumer,
		handler:  handler,
		logger:   logger,
	}
}

func (l *Listener) WorkerJob() worker.ErrorJob {
	return func(ctx context.Context) error {
		defer l.consumer.Close()

		for {
			select {
			case consumerMsg, ok := <-l.consumer.Messages():
				if !ok {
					return nil
				}

				l.processMessage(ctx, consumerMsg)
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (l *Listener) processMessage(ctx context.Context, consumerMsg *ConsumerMessage) {
	err := l.handler(ctx, &consumerMsg.Message)
	if err != nil {
		l.logger.
			WithField("messageID", consumerMsg.Message.ID).
			WithField("consumerName", l.consumer.Name()).
			WithError(err).
			Error(ctx, "failed to handle message")
		l.consumer.Nack(consumerMsg)
		return
	}

	l.consumer.Ack(consumerMsg)
}
