package http

import (
	"io"
	"net/http"
	"strconv"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/notifier"
	"smartmenu-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	hub *notifier.Hub
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, hub *notifier.Hub, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, hub: hub, log: log}
}

// Calculate handles POST /orders/calculate, the live cart preview.
func (h *OrderHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	method, ok := parseDeliveryMethod(req.DeliveryMethod)
	if !ok {
		badRequest(c, "delivery_method must be standard or fast")
		return
	}

	b, err := h.svc.Calculate(c.Request.Context(), req.toInput(method))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toBreakdownResponse(b))
}

// Create handles POST /orders, the checkout submission.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	method, ok := parseDeliveryMethod(req.DeliveryMethod)
	if !ok {
		badRequest(c, "delivery_method must be standard or fast")
		return
	}
	payment, ok := parsePaymentMethod(req.PaymentMethod)
	if !ok {
		badRequest(c, "payment_method must be cash, bank_transfer or mobile_wallet")
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CalculateInput:  req.toInput(method),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerNote:    req.CustomerNote,
		PaymentMethod:   payment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.Int64("total_amount", order.TotalAmount))
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	f := service.ListFilter{}
	if s := c.Query("status"); s != "" {
		status, ok := parseOrderStatus(s)
		if !ok {
			badRequest(c, "unknown status filter")
			return
		}
		f.Status = &status
	}
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Limit = n
		}
	}
	if s := c.Query("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			f.Offset = n
		}
	}

	orders, total, err := h.svc.ListOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "total": total})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid order id")
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid order id")
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	status, ok := parseOrderStatus(req.Status)
	if !ok {
		// Accept the storage representation too.
		status = models.OrderStatus(req.Status)
	}

	order, err := h.svc.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Stream handles GET /admin/orders/stream, pushing new-order events to the
// admin session over SSE until the client disconnects.
func (h *OrderHandler) Stream(c *gin.Context) {
	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	h.log.Info("admin subscribed to order stream", zap.Int("subscribers", h.hub.Len()))

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	h.log.Info("admin left order stream")
}
