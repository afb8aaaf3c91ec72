package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smartmenu-service/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderConsumer reads order-created events from Kafka and forwards them to
// the hub for connected administrator sessions.
type OrderConsumer struct {
	reader *kafka.Reader
	hub    *Hub
	log    *zap.Logger
}

func NewOrderConsumer(brokers []string, groupID, topic string, hub *Hub, log *zap.Logger) *OrderConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		MinBytes:          10e3,
		MaxBytes:          10e6,
		CommitInterval:    time.Second,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	})
	return &OrderConsumer{reader: r, hub: hub, log: log}
}

func (c *OrderConsumer) Run(ctx context.Context) error {
	c.log.Info("order notification consumer started")
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			c.log.Error("read order event", zap.Error(err))
			continue
		}

		var ev service.OrderCreatedEvent
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			c.log.Error("unmarshal order event", zap.ByteString("value", m.Value), zap.Error(err))
			continue
		}
		if ev.Type != service.EventTypeNewOrder {
			c.log.Warn("unexpected event type", zap.String("type", ev.Type))
			continue
		}

		c.hub.Broadcast(ev)
		c.log.Info("order event delivered",
			zap.String("order_id", ev.OrderID.String()),
			zap.Int("subscribers", c.hub.Len()))
	}
}

func (c *OrderConsumer) Close() error { return c.reader.Close() }
