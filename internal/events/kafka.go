package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopkhata/billing-service/internal/config"
	"github.com/shopkhata/billing-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Publisher отправляет события жизненного цикла заказа в kafka.
// Ключ сообщения - orderId, чтобы события одного заказа шли по порядку.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	// В библиотеке уже есть retry
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
