package storage

import (
	"context"
	"encoding/json"

	"autobus-caisse/register-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishLedgerEvent keys messages by transaction id so that every event of
// one transaction lands on the same partition, in order.
func (p *KafkaPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Transaction.ID),
		Value: payload,
	})
}
