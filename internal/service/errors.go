package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOptionGroupNotFound = errors.New("option group not found")
	ErrOptionValueNotFound = errors.New("option value not found")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrCodeAlreadyExists   = errors.New("voucher code already exists")

	ErrEmptyItems             = errors.New("empty items")
	ErrQuantityInvalid        = errors.New("quantity must be > 0")
	ErrInvalidDeliveryMethod  = errors.New("invalid delivery method")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrInvalidVoucherType     = errors.New("voucher type must be PERCENTAGE or FIXED")
	ErrCustomerDetailsMissing = errors.New("customer name, phone and address are required")
)

type ValidationKind string

const (
	KindInvalidProduct       ValidationKind = "INVALID_PRODUCT"
	KindInvalidOption        ValidationKind = "INVALID_OPTION"
	KindInvalidVoucher       ValidationKind = "INVALID_VOUCHER"
	KindVoucherMinimumNotMet ValidationKind = "VOUCHER_MINIMUM_NOT_MET"
)

// ValidationError is a caller-fixable cart error carrying enough detail to
// identify the offending reference.
type ValidationError struct {
	Kind          ValidationKind
	ProductID     uuid.UUID // set for INVALID_PRODUCT
	OptionValueID uuid.UUID // set for INVALID_OPTION
	VoucherCode   string    // set for voucher kinds
	MinOrderValue int64     // set for VOUCHER_MINIMUM_NOT_MET
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidProduct:
		return fmt.Sprintf("product %s does not exist", e.ProductID)
	case KindInvalidOption:
		return fmt.Sprintf("option value %s does not exist", e.OptionValueID)
	case KindInvalidVoucher:
		return fmt.Sprintf("voucher code %q is invalid or inactive", e.VoucherCode)
	case KindVoucherMinimumNotMet:
		return fmt.Sprintf("order subtotal is below the %d minimum for voucher %q", e.MinOrderValue, e.VoucherCode)
	}
	return string(e.Kind)
}

func invalidProduct(id uuid.UUID) error {
	return &ValidationError{Kind: KindInvalidProduct, ProductID: id}
}

func invalidOption(id uuid.UUID) error {
	return &ValidationError{Kind: KindInvalidOption, OptionValueID: id}
}

func invalidVoucher(code string) error {
	return &ValidationError{Kind: KindInvalidVoucher, VoucherCode: code}
}

func voucherMinimumNotMet(code string, min int64) error {
	return &ValidationError{Kind: KindVoucherMinimumNotMet, VoucherCode: code, MinOrderValue: min}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
