package notifier

import (
	"context"
	"fmt"
	"time"

	"eats/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRelay forwards events to a Kafka topic keyed by order id, so all events
// of one order land on the same partition in order.
type KafkaRelay struct {
	writer messageWriter
}

func NewKafkaRelay(brokers []string, topic string) *KafkaRelay {
	return &KafkaRelay{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}}
}

func (r *KafkaRelay) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return fmt.Errorf("kafka: encode %s: %w", e.Kind, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(e.Order.ID.String()),
			Value:   body,
			Headers: []kafka.Header{{Key: "kind", Value: []byte(e.Kind)}},
			Time:    e.OccurredAt,
		})
	}

	if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write messages: %w", err)
	}
	return nil
}

func (r *KafkaRelay) Close() error {
	return r.writer.Close()
}
