package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"pos-register/internal/domain"
)

// TallyStore receives one increment per completed order.
type TallyStore interface {
	RecordOrderTally(ctx context.Context, event domain.OrderEvent) error
}

// Consumer reads completed-order events and keeps the live daily tallies up
// to date. It is advisory: reports always reduce over the SQL store.
type Consumer struct {
	Reader *kafka.Reader
	Store  TallyStore
}

func NewConsumer(reader *kafka.Reader, store TallyStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[sales-worker] consuming order events...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[sales-worker] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[sales-worker] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order_completed" {
		return
	}
	if err := c.Store.RecordOrderTally(ctx, event); err != nil {
		log.Printf("[sales-worker] error recording tally for order %s: %v", event.OrderNumber, err)
		return
	}
	log.Printf("[sales-worker] recorded order %s (%s, %s)",
		event.OrderNumber, event.OrderType, event.Total.StringFixed(2))
}
