package service

import (
	"context"
	"strings"
	"time"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderService struct {
	repo   *repository.Repository
	events EventBus
	log    *zap.Logger
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

func (s *orderService) Calculate(ctx context.Context, in CalculateInput) (*Breakdown, error) {
	cart, err := price(ctx, NewCatalogReader(s.repo), in)
	if err != nil {
		return nil, err
	}
	b := cart.Breakdown
	return &b, nil
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.CustomerAddress) == "" {
		return nil, ErrCustomerDetailsMissing
	}
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	var order *models.Order
	err := s.repo.Orders.WithTx(ctx, func(tx *repository.Repository) error {
		// Reprice from an in-transaction read of the catalog; the client's
		// numbers are never trusted, only its references.
		cart, err := price(ctx, NewCatalogReader(tx), in.CalculateInput)
		if err != nil {
			return err
		}

		// A voucher code that produced no discount is not recorded.
		var voucherCode *string
		if in.VoucherCode != "" && cart.Breakdown.DiscountAmount > 0 {
			code := in.VoucherCode
			voucherCode = &code
		}

		now := s.now()
		order = &models.Order{
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
			CustomerAddress: strings.TrimSpace(in.CustomerAddress),
			CustomerNote:    in.CustomerNote,
			SubTotal:        cart.Breakdown.SubTotal,
			DeliveryFee:     cart.Breakdown.DeliveryFee,
			DiscountAmount:  cart.Breakdown.DiscountAmount,
			TotalAmount:     cart.Breakdown.TotalAmount,
			Status:          models.OrderStatusNew,
			PaymentMethod:   in.PaymentMethod,
			DeliveryMethod:  in.DeliveryMethod,
			VoucherCode:     voucherCode,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, len(cart.Lines))
		for i, line := range cart.Lines {
			items[i] = models.OrderItem{
				OrderID:     order.ID,
				ProductName: line.Product.Name,
				Quantity:    line.Quantity,
				ItemPrice:   line.UnitPrice,
				ItemNote:    line.Note,
				CreatedAt:   now,
			}
		}
		if err := tx.OrderItems.BulkCreate(ctx, items); err != nil {
			return err
		}

		var itemOpts []models.OrderItemOption
		for i, line := range cart.Lines {
			for _, val := range line.Options {
				var groupName string
				if val.OptionGroup != nil {
					groupName = val.OptionGroup.Name
				}
				itemOpts = append(itemOpts, models.OrderItemOption{
					OrderItemID: items[i].ID,
					OptionName:  groupName,
					ValueName:   val.Name,
					AddedPrice:  val.PriceAdjustment,
				})
			}
		}
		if err := tx.OrderItems.BulkCreateOptions(ctx, itemOpts); err != nil {
			return err
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitCreated(ctx, order)
	return order, nil
}

// emitCreated hands the event to the notification collaborator without
// blocking the submission path; failures are logged and swallowed.
func (s *orderService) emitCreated(ctx context.Context, order *models.Order) {
	if s.events == nil {
		return
	}
	ev := OrderCreatedEvent{
		Type:           EventTypeNewOrder,
		OrderID:        order.ID,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		TotalAmount:    order.TotalAmount,
		DeliveryMethod: string(order.DeliveryMethod),
		PaymentMethod:  string(order.PaymentMethod),
		Timestamp:      s.now(),
		Status:         string(order.Status),
	}
	// The request context may be cancelled as soon as the response is
	// written; publishing keeps its own lifetime.
	go func(ctx context.Context) {
		if err := s.events.PublishOrderCreated(ctx, ev); err != nil {
			s.log.Warn("order notification publish failed",
				zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}(context.WithoutCancel(ctx))
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	ordersPtr, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, total, nil
}

func (s *orderService) SetStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.repo.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.Orders.GetByID(ctx, id)
}
