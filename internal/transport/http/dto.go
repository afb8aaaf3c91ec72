package http

import (
	"time"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/service"

	"github.com/google/uuid"
)

// Wire enums are friendly lowercase strings; storage enums stay internal.

func parseDeliveryMethod(s string) (models.DeliveryMethod, bool) {
	switch s {
	case "standard":
		return models.DeliveryStandard, true
	case "fast":
		return models.DeliveryFast, true
	}
	return "", false
}

func deliveryMethodString(m models.DeliveryMethod) string {
	if m == models.DeliveryFast {
		return "fast"
	}
	return "standard"
}

func parsePaymentMethod(s string) (models.PaymentMethod, bool) {
	switch s {
	case "cash":
		return models.PaymentCash, true
	case "bank_transfer":
		return models.PaymentBankTransfer, true
	case "mobile_wallet":
		return models.PaymentMobileWallet, true
	}
	return "", false
}

func paymentMethodString(m models.PaymentMethod) string {
	switch m {
	case models.PaymentBankTransfer:
		return "bank_transfer"
	case models.PaymentMobileWallet:
		return "mobile_wallet"
	}
	return "cash"
}

var statusNames = map[models.OrderStatus]string{
	models.OrderStatusNew:            "new",
	models.OrderStatusConfirmed:      "confirmed",
	models.OrderStatusInProgress:     "in_progress",
	models.OrderStatusOutForDelivery: "out_for_delivery",
	models.OrderStatusCompleted:      "completed",
	models.OrderStatusCancelled:      "cancelled",
}

func parseOrderStatus(s string) (models.OrderStatus, bool) {
	for status, name := range statusNames {
		if name == s {
			return status, true
		}
	}
	return "", false
}

func orderStatusString(s models.OrderStatus) string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

type cartItemRequest struct {
	ProductID uuid.UUID   `json:"product_id" binding:"required"`
	Quantity  uint32      `json:"quantity" binding:"required,min=1"`
	Options   []uuid.UUID `json:"options"`
	Note      string      `json:"note"`
}

type calculateRequest struct {
	Items          []cartItemRequest `json:"items" binding:"required,min=1"`
	DeliveryMethod string            `json:"delivery_method" binding:"required"`
	VoucherCode    string            `json:"voucher_code"`
}

func (r calculateRequest) toInput(method models.DeliveryMethod) service.CalculateInput {
	items := make([]service.CartItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = service.CartItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			OptionValueIDs: it.Options,
			Note:           it.Note,
		}
	}
	return service.CalculateInput{
		Items:          items,
		DeliveryMethod: method,
		VoucherCode:    r.VoucherCode,
	}
}

type createOrderRequest struct {
	calculateRequest

	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	CustomerNote    string `json:"customer_note"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

type breakdownResponse struct {
	SubTotal       int64 `json:"sub_total"`
	DeliveryFee    int64 `json:"delivery_fee"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

func toBreakdownResponse(b *service.Breakdown) breakdownResponse {
	return breakdownResponse{
		SubTotal:       b.SubTotal,
		DeliveryFee:    b.DeliveryFee,
		DiscountAmount: b.DiscountAmount,
		TotalAmount:    b.TotalAmount,
	}
}

type orderItemOptionResponse struct {
	OptionName string `json:"option_name"`
	ValueName  string `json:"value_name"`
	AddedPrice int64  `json:"added_price"`
}

type orderItemResponse struct {
	ID          uuid.UUID                 `json:"id"`
	ProductName string                    `json:"product_name"`
	Quantity    uint32                    `json:"quantity"`
	ItemPrice   int64                     `json:"item_price"`
	ItemNote    string                    `json:"item_note,omitempty"`
	Options     []orderItemOptionResponse `json:"options"`
}

type orderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	CustomerNote    string              `json:"customer_note,omitempty"`
	SubTotal        int64               `json:"sub_total"`
	DeliveryFee     int64               `json:"delivery_fee"`
	DiscountAmount  int64               `json:"discount_amount"`
	TotalAmount     int64               `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
	DeliveryMethod  string              `json:"delivery_method"`
	VoucherCode     *string             `json:"voucher_code,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []orderItemResponse `json:"items,omitempty"`
}

func toOrderResponse(o *models.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, it := range o.Items {
		opts := make([]orderItemOptionResponse, len(it.Options))
		for j, opt := range it.Options {
			opts[j] = orderItemOptionResponse{
				OptionName: opt.OptionName,
				ValueName:  opt.ValueName,
				AddedPrice: opt.AddedPrice,
			}
		}
		items[i] = orderItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			ItemPrice:   it.ItemPrice,
			ItemNote:    it.ItemNote,
			Options:     opts,
		}
	}
	return orderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerNote:    o.CustomerNote,
		SubTotal:        o.SubTotal,
		DeliveryFee:     o.DeliveryFee,
		DiscountAmount:  o.DiscountAmount,
		TotalAmount:     o.TotalAmount,
		Status:          orderStatusString(o.Status),
		PaymentMethod:   paymentMethodString(o.PaymentMethod),
		DeliveryMethod:  deliveryMethodString(o.DeliveryMethod),
		VoucherCode:     o.VoucherCode,
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}

type optionValueResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceAdjustment int64     `json:"price_adjustment"`
	IsOutOfStock    bool      `json:"is_out_of_stock"`
}

type optionGroupResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Type         string                `json:"type"`
	DisplayOrder int                   `json:"display_order"`
	Values       []optionValueResponse `json:"values"`
}

func selectionTypeString(t models.SelectionType) string {
	if t == models.SelectionSingle {
		return "single_choice"
	}
	return "multi_choice"
}

func parseSelectionType(s string) (models.SelectionType, bool) {
	switch s {
	case "single_choice":
		return models.SelectionSingle, true
	case "multi_choice":
		return models.SelectionMulti, true
	}
	return "", false
}

func toOptionValueResponse(v *models.OptionValue) optionValueResponse {
	return optionValueResponse{
		ID:              v.ID,
		Name:            v.Name,
		PriceAdjustment: v.PriceAdjustment,
		IsOutOfStock:    v.IsOutOfStock,
	}
}

func toOptionGroupResponse(g *models.OptionGroup) optionGroupResponse {
	values := make([]optionValueResponse, len(g.Values))
	for i := range g.Values {
		values[i] = toOptionValueResponse(&g.Values[i])
	}
	return optionGroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		Type:         selectionTypeString(g.Type),
		DisplayOrder: g.DisplayOrder,
		Values:       values,
	}
}

type productResponse struct {
	ID           uuid.UUID             `json:"id"`
	CategoryID   uuid.UUID             `json:"category_id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	BasePrice    int64                 `json:"base_price"`
	ImageURL     string                `json:"image_url,omitempty"`
	IsBestSeller bool                  `json:"is_best_seller"`
	IsOutOfStock bool                  `json:"is_out_of_stock"`
	DisplayOrder int                   `json:"display_order"`
	OptionGroups []optionGroupResponse `json:"option_groups"`
}

func toProductResponse(p *models.Product) productResponse {
	groups := make([]optionGroupResponse, len(p.OptionGroups))
	for i := range p.OptionGroups {
		groups[i] = toOptionGroupResponse(&p.OptionGroups[i])
	}
	return productResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		BasePrice:    p.BasePrice,
		ImageURL:     p.ImageURL,
		IsBestSeller: p.IsBestSeller,
		IsOutOfStock: p.IsOutOfStock,
		DisplayOrder: p.DisplayOrder,
		OptionGroups: groups,
	}
}

type categoryResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	DisplayOrder int               `json:"display_order"`
	Products     []productResponse `json:"products,omitempty"`
}

func toCategoryResponse(c *models.Category) categoryResponse {
	products := make([]productResponse, len(c.Products))
	for i := range c.Products {
		products[i] = toProductResponse(&c.Products[i])
	}
	return categoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		Products:     products,
	}
}

type voucherResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type"`
	Value         int64     `json:"value"`
	MinOrderValue int64     `json:"min_order_value"`
	MaxDiscount   *int64    `json:"max_discount,omitempty"`
	IsActive      bool      `json:"is_active"`
}

func voucherTypeString(t models.VoucherType) string {
	if t == models.VoucherFixed {
		return "fixed"
	}
	return "percentage"
}

func parseVoucherType(s string) (models.VoucherType, bool) {
	switch s {
	case "percentage":
		return models.VoucherPercentage, true
	case "fixed":
		return models.VoucherFixed, true
	}
	return "", false
}

func toVoucherResponse(v *models.Voucher) voucherResponse {
	return voucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		Description:   v.Description,
		Type:          voucherTypeString(v.Type),
		Value:         v.Value,
		MinOrderValue: v.MinOrderValue,
		MaxDiscount:   v.MaxDiscount,
		IsActive:      v.IsActive,
	}
}
