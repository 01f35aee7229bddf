package notifier

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitRelay forwards events to a durable fanout exchange. The event kind is
// used as routing key so topic-bound consumers can filter too.
type RabbitRelay struct {
	exchange string
	ch       amqpPublisher
	closers  []func() error
}

// DialRabbitRelay connects, opens a channel and declares the exchange.
func DialRabbitRelay(url, exchange string) (*RabbitRelay, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", exchange, err)
	}

	return &RabbitRelay{
		exchange: exchange,
		ch:       ch,
		closers:  []func() error{ch.Close, conn.Close},
	}, nil
}

func (r *RabbitRelay) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return fmt.Errorf("rabbitmq: encode %s: %w", e.Kind, err)
		}
		err = r.ch.PublishWithContext(ctx, r.exchange, string(e.Kind), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    e.Order.ID.String(),
			Type:         string(e.Kind),
			Timestamp:    e.OccurredAt.UTC(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("rabbitmq: publish %s: %w", e.Kind, err)
		}
	}
	return nil
}

func (r *RabbitRelay) Close() error {
	var firstErr error
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
