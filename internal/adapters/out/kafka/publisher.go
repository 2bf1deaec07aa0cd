// Package kafka publishes order lifecycle events to a Kafka topic.
//
// Publication is the notification hook behind every accepted transition;
// it is best-effort by contract, so callers log failures and move on.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// statusChangedMessage is the wire shape of a status change notification.
type statusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher writes status change events to a Kafka topic, keyed by order id
// so all events of one order land in the same partition, in order.
type Publisher struct {
	writer *kafka.Writer
	topic  string
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishStatusChanged writes one status change event.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	data, err := json.Marshal(statusChangedMessage{
		OrderID:    event.OrderID.String(),
		OldStatus:  event.OldStatus.String(),
		NewStatus:  event.NewStatus.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. Used when no brokers are configured,
// typically in local development.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishStatusChanged(context.Context, order.StatusChangedEvent) error {
	return nil
}
