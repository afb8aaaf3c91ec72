package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const EventTypeNewOrder = "new_order"

// OrderCreatedEvent is the payload pushed to administrator sessions after an
// order commits. Field names are part of the wire contract.
type OrderCreatedEvent struct {
	Type           string    `json:"type"`
	OrderID        uuid.UUID `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	TotalAmount    int64     `json:"total_amount"`
	DeliveryMethod string    `json:"delivery_method"`
	PaymentMethod  string    `json:"payment_method"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
}

// EventBus delivers order events to the notification collaborator.
// Publishing is best-effort; failures never affect the committed order.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
}
