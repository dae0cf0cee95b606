package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"reeves-booking/internal/domain"
)

// Consumer drains order events and folds them into the popularity
// counters.
type Consumer struct {
	Reader *kafka.Reader
	Store  PopularityStore
}

func NewConsumer(reader *kafka.Reader, store PopularityStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order analytics consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventOrderPlaced {
			c.ProcessOrder(ctx, event)
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.Printf("Error recording order %s: %v", event.OrderID, err)
		return
	}
	log.Printf("Recorded popularity for order %s (%d items)", event.OrderID, len(event.Items))
}
