package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/notifier"
	"smartmenu-service/internal/service"
	transport "smartmenu-service/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MockOrderService struct {
	CalculateFunc   func(ctx context.Context, in service.CalculateInput) (*service.Breakdown, error)
	CreateOrderFunc func(ctx context.Context, in service.CreateOrderInput) (*models.Order, error)
	GetOrderFunc    func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersFunc  func(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error)
	SetStatusFunc   func(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

func (m *MockOrderService) Calculate(ctx context.Context, in service.CalculateInput) (*service.Breakdown, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, in)
	}
	return &service.Breakdown{}, nil
}

func (m *MockOrderService) CreateOrder(ctx context.Context, in service.CreateOrderInput) (*models.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, in)
	}
	return &models.Order{}, nil
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return &models.Order{ID: id}, nil
}

func (m *MockOrderService) ListOrders(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderService) SetStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return &models.Order{ID: id, Status: status}, nil
}

type MockCatalogService struct {
	service.CatalogService

	MenuFunc func(ctx context.Context) ([]models.Category, error)
}

func (m *MockCatalogService) Menu(ctx context.Context) ([]models.Category, error) {
	if m.MenuFunc != nil {
		return m.MenuFunc(ctx)
	}
	return nil, nil
}

func newTestRouter(orders service.OrderService, catalog service.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return transport.Router(orders, catalog, notifier.NewHub(), zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateEndpoint_TranslatesWireEnums(t *testing.T) {
	var got service.CalculateInput
	orders := &MockOrderService{
		CalculateFunc: func(ctx context.Context, in service.CalculateInput) (*service.Breakdown, error) {
			got = in
			return &service.Breakdown{SubTotal: 30000, DeliveryFee: 25000, TotalAmount: 55000}, nil
		},
	}
	r := newTestRouter(orders, &MockCatalogService{})

	productID := uuid.New()
	body := `{"items":[{"product_id":"` + productID.String() + `","quantity":1}],"delivery_method":"fast"}`
	w := doJSON(t, r, "POST", "/orders/calculate", body)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got.DeliveryMethod != models.DeliveryFast {
		t.Fatalf("DeliveryMethod = %s, want fast", got.DeliveryMethod)
	}

	var resp map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["total_amount"] != 55000 || resp["delivery_fee"] != 25000 {
		t.Fatalf("response mismatch: %v", resp)
	}
}

func TestCalculateEndpoint_RejectsUnknownDeliveryMethod(t *testing.T) {
	r := newTestRouter(&MockOrderService{}, &MockCatalogService{})

	body := `{"items":[{"product_id":"` + uuid.NewString() + `","quantity":1}],"delivery_method":"drone"}`
	w := doJSON(t, r, "POST", "/orders/calculate", body)

	if w.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCalculateEndpoint_ValidationErrorCarriesKind(t *testing.T) {
	missing := uuid.New()
	orders := &MockOrderService{
		CalculateFunc: func(ctx context.Context, in service.CalculateInput) (*service.Breakdown, error) {
			return nil, &service.ValidationError{Kind: service.KindInvalidProduct, ProductID: missing}
		},
	}
	r := newTestRouter(orders, &MockCatalogService{})

	body := `{"items":[{"product_id":"` + missing.String() + `","quantity":1}],"delivery_method":"standard"}`
	w := doJSON(t, r, "POST", "/orders/calculate", body)

	if w.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["kind"] != "INVALID_PRODUCT" {
		t.Fatalf("kind = %q, want INVALID_PRODUCT", resp["kind"])
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	orderID := uuid.New()
	orders := &MockOrderService{
		CreateOrderFunc: func(ctx context.Context, in service.CreateOrderInput) (*models.Order, error) {
			if in.CustomerName != "Nguyen Van A" || in.PaymentMethod != models.PaymentBankTransfer {
				t.Fatalf("input mismatch: %+v", in)
			}
			return &models.Order{
				ID:             orderID,
				CustomerName:   in.CustomerName,
				Status:         models.OrderStatusNew,
				PaymentMethod:  in.PaymentMethod,
				DeliveryMethod: in.DeliveryMethod,
				TotalAmount:    45000,
			}, nil
		},
	}
	r := newTestRouter(orders, &MockCatalogService{})

	body := `{
		"items":[{"product_id":"` + uuid.NewString() + `","quantity":1}],
		"delivery_method":"standard",
		"customer_name":"Nguyen Van A",
		"customer_phone":"0901234567",
		"customer_address":"12 Ly Thuong Kiet",
		"payment_method":"bank_transfer"
	}`
	w := doJSON(t, r, "POST", "/orders", body)

	if w.Code != nethttp.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["id"] != orderID.String() || resp["status"] != "new" || resp["payment_method"] != "bank_transfer" {
		t.Fatalf("response mismatch: %v", resp)
	}
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	orders := &MockOrderService{
		GetOrderFunc: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return nil, service.ErrOrderNotFound
		},
	}
	r := newTestRouter(orders, &MockCatalogService{})

	w := doJSON(t, r, "GET", "/admin/orders/"+uuid.NewString(), "")
	if w.Code != nethttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSetStatusEndpoint_AcceptsFriendlyName(t *testing.T) {
	var gotStatus models.OrderStatus
	orders := &MockOrderService{
		SetStatusFunc: func(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
			gotStatus = status
			return &models.Order{ID: id, Status: status}, nil
		},
	}
	r := newTestRouter(orders, &MockCatalogService{})

	w := doJSON(t, r, "PUT", "/admin/orders/"+uuid.NewString()+"/status", `{"status":"out_for_delivery"}`)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotStatus != models.OrderStatusOutForDelivery {
		t.Fatalf("status passed = %s, want out for delivery", gotStatus)
	}
}

func TestMenuEndpoint(t *testing.T) {
	catalog := &MockCatalogService{
		MenuFunc: func(ctx context.Context) ([]models.Category, error) {
			return []models.Category{{
				ID:   uuid.New(),
				Name: "Milk Tea",
				Products: []models.Product{{
					ID:        uuid.New(),
					Name:      "Matcha",
					BasePrice: 35000,
					OptionGroups: []models.OptionGroup{{
						ID:   uuid.New(),
						Name: "Size",
						Type: models.SelectionSingle,
						Values: []models.OptionValue{{
							ID: uuid.New(), Name: "Size L", PriceAdjustment: 5000,
						}},
					}},
				}},
			}}, nil
		},
	}
	r := newTestRouter(&MockOrderService{}, catalog)

	w := doJSON(t, r, "GET", "/menu", "")
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp []struct {
		Name     string `json:"name"`
		Products []struct {
			Name         string `json:"name"`
			BasePrice    int64  `json:"base_price"`
			OptionGroups []struct {
				Type   string `json:"type"`
				Values []struct {
					PriceAdjustment int64 `json:"price_adjustment"`
				} `json:"values"`
			} `json:"option_groups"`
		} `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0].Products[0].OptionGroups[0].Type != "single_choice" {
		t.Fatalf("menu shape mismatch: %s", w.Body.String())
	}
	if resp[0].Products[0].OptionGroups[0].Values[0].PriceAdjustment != 5000 {
		t.Fatal("option value adjustment missing")
	}
}
