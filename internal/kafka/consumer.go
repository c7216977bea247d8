package kafkax

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, group, topic string) *Consumer {
	return &Consumer{reader: kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  group,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})}
}

func (c *Consumer) Fetch(ctx context.Context) (kafka.Message, error) {
	return c.reader.FetchMessage(ctx)
}

func (c *Consumer) Commit(ctx context.Context, m kafka.Message) error {
	return c.reader.CommitMessages(ctx, m)
}

func (c *Consumer) Close() error { return c.reader.Close() }

// ChangeEvent is the booking-change event published by the record store's
// edge functions whenever a booking row is inserted, updated, or deleted.
type ChangeEvent struct {
	Type      string `json:"type"` // insert | update | delete
	BookingID string `json:"booking_id"`
}

func ParseChangeEvent(b []byte) (ChangeEvent, error) {
	var e ChangeEvent
	err := json.Unmarshal(b, &e)
	return e, err
}
