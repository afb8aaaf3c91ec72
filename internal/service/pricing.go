package service

import (
	"context"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/repository"

	"github.com/google/uuid"
)

// Delivery fees in smallest currency units. Standard delivery is free from
// freeDeliveryThreshold upward.
const (
	standardDeliveryFee   int64 = 15000
	fastDeliveryFee       int64 = 25000
	freeDeliveryThreshold int64 = 50000
)

// CatalogReader is the pricing engine's only view of catalog state. Missing
// ids are simply absent from the result maps. Backed by a transaction-scoped
// repository at submission time.
type CatalogReader interface {
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
	// OptionValuesByIDs returns values with their owning group loaded.
	OptionValuesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.OptionValue, error)
	// ActiveVoucherByCode returns nil for absent or inactive codes.
	ActiveVoucherByCode(ctx context.Context, code string) (*models.Voucher, error)
}

type catalogReader struct{ repo *repository.Repository }

func NewCatalogReader(repo *repository.Repository) CatalogReader {
	return &catalogReader{repo: repo}
}

func (c *catalogReader) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	list, err := c.repo.Products.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Product, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

func (c *catalogReader) OptionValuesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.OptionValue, error) {
	list, err := c.repo.OptionValues.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.OptionValue, len(list))
	for _, v := range list {
		out[v.ID] = v
	}
	return out, nil
}

func (c *catalogReader) ActiveVoucherByCode(ctx context.Context, code string) (*models.Voucher, error) {
	return c.repo.Vouchers.GetActiveByCode(ctx, code)
}

type CartItem struct {
	ProductID      uuid.UUID
	Quantity       uint32
	OptionValueIDs []uuid.UUID
	Note           string
}

type CalculateInput struct {
	Items          []CartItem
	DeliveryMethod models.DeliveryMethod
	VoucherCode    string
}

type Breakdown struct {
	SubTotal       int64
	DeliveryFee    int64
	DiscountAmount int64
	TotalAmount    int64
}

// pricedLine carries the resolved catalog rows alongside the computed unit
// price so submission can snapshot them without a second lookup.
type pricedLine struct {
	Product   models.Product
	Quantity  uint32
	Note      string
	Options   []models.OptionValue
	UnitPrice int64
}

type pricedCart struct {
	Lines     []pricedLine
	Breakdown Breakdown
}

func deliveryFee(method models.DeliveryMethod, subTotal int64) int64 {
	if method == models.DeliveryFast {
		return fastDeliveryFee
	}
	if subTotal >= freeDeliveryThreshold {
		return 0
	}
	return standardDeliveryFee
}

// voucherDiscount computes the bounded discount for an eligible voucher.
// Percentage discounts round half away from zero; the result never goes
// negative and never exceeds the subtotal.
func voucherDiscount(v *models.Voucher, subTotal int64) int64 {
	if v == nil || !v.IsActive || subTotal < v.MinOrderValue {
		return 0
	}

	var discount int64
	switch v.Type {
	case models.VoucherPercentage:
		discount = (subTotal*v.Value + 50) / 100
		if v.MaxDiscount != nil && discount > *v.MaxDiscount {
			discount = *v.MaxDiscount
		}
	case models.VoucherFixed:
		discount = v.Value
	}

	if discount < 0 {
		return 0
	}
	if discount > subTotal {
		return subTotal
	}
	return discount
}

// price recomputes the authoritative breakdown for a cart from catalog truth.
// Deterministic and side-effect free; every referenced id must resolve.
func price(ctx context.Context, reader CatalogReader, in CalculateInput) (*pricedCart, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !in.DeliveryMethod.Valid() {
		return nil, ErrInvalidDeliveryMethod
	}

	productIDs := make([]uuid.UUID, 0, len(in.Items))
	seenProducts := make(map[uuid.UUID]struct{}, len(in.Items))
	var valueIDs []uuid.UUID
	seenValues := map[uuid.UUID]struct{}{}
	for _, it := range in.Items {
		if it.Quantity == 0 {
			return nil, ErrQuantityInvalid
		}
		if _, ok := seenProducts[it.ProductID]; !ok {
			seenProducts[it.ProductID] = struct{}{}
			productIDs = append(productIDs, it.ProductID)
		}
		for _, vid := range it.OptionValueIDs {
			if _, ok := seenValues[vid]; !ok {
				seenValues[vid] = struct{}{}
				valueIDs = append(valueIDs, vid)
			}
		}
	}

	// One round trip per entity kind, regardless of cart size.
	products, err := reader.ProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	values, err := reader.OptionValuesByIDs(ctx, valueIDs)
	if err != nil {
		return nil, err
	}

	cart := &pricedCart{Lines: make([]pricedLine, 0, len(in.Items))}
	var subTotal int64
	for _, it := range in.Items {
		product, ok := products[it.ProductID]
		if !ok {
			return nil, invalidProduct(it.ProductID)
		}

		unit := product.BasePrice
		opts := make([]models.OptionValue, 0, len(it.OptionValueIDs))
		for _, vid := range it.OptionValueIDs {
			val, ok := values[vid]
			if !ok {
				return nil, invalidOption(vid)
			}
			unit += val.PriceAdjustment
			opts = append(opts, val)
		}

		subTotal += unit * int64(it.Quantity)
		cart.Lines = append(cart.Lines, pricedLine{
			Product:   product,
			Quantity:  it.Quantity,
			Note:      it.Note,
			Options:   opts,
			UnitPrice: unit,
		})
	}

	fee := deliveryFee(in.DeliveryMethod, subTotal)

	var discount int64
	if in.VoucherCode != "" {
		voucher, err := reader.ActiveVoucherByCode(ctx, in.VoucherCode)
		if err != nil {
			return nil, err
		}
		if voucher == nil {
			return nil, invalidVoucher(in.VoucherCode)
		}
		if subTotal < voucher.MinOrderValue {
			return nil, voucherMinimumNotMet(in.VoucherCode, voucher.MinOrderValue)
		}
		discount = voucherDiscount(voucher, subTotal)
	}

	total := subTotal + fee - discount
	if total < 0 {
		total = 0
	}

	cart.Breakdown = Breakdown{
		SubTotal:       subTotal,
		DeliveryFee:    fee,
		DiscountAmount: discount,
		TotalAmount:    total,
	}
	return cart, nil
}
