package service

import (
	"context"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	CalculateInput

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerNote    string
	PaymentMethod   models.PaymentMethod
}

type ListFilter struct {
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderService interface {
	// Calculate recomputes the authoritative price breakdown for a cart.
	// Idempotent; used for live previews before checkout.
	Calculate(ctx context.Context, in CalculateInput) (*Breakdown, error)
	// CreateOrder reprices the cart and persists it as an immutable snapshot
	// in a single transaction, then emits a best-effort notification.
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
	// SetStatus accepts any member of the status enum; no transition graph
	// is enforced.
	SetStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}
