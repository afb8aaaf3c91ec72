package models

import (
	"time"

	"github.com/google/uuid"
)

// All monetary fields are int64 amounts in the smallest unit of the local
// currency. Order rows and their children are immutable price snapshots:
// after insert only Order.Status and Order.UpdatedAt ever change.

type SelectionType string

const (
	SelectionSingle SelectionType = "SINGLE_CHOICE"
	SelectionMulti  SelectionType = "MULTI_CHOICE"
)

// OrderStatus values in their intended lifecycle order. Transitions are not
// enforced; any status may be set by an administrator.
type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "ORDER_STATUS_NEW"
	OrderStatusConfirmed      OrderStatus = "ORDER_STATUS_CONFIRMED"
	OrderStatusInProgress     OrderStatus = "ORDER_STATUS_IN_PROGRESS"
	OrderStatusOutForDelivery OrderStatus = "ORDER_STATUS_OUT_FOR_DELIVERY"
	OrderStatusCompleted      OrderStatus = "ORDER_STATUS_COMPLETED"
	OrderStatusCancelled      OrderStatus = "ORDER_STATUS_CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusOutForDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "PAYMENT_CASH"
	PaymentBankTransfer PaymentMethod = "PAYMENT_BANK_TRANSFER"
	PaymentMobileWallet PaymentMethod = "PAYMENT_MOBILE_WALLET"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentMobileWallet:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "DELIVERY_STANDARD"
	DeliveryFast     DeliveryMethod = "DELIVERY_FAST"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryStandard || m == DeliveryFast
}

type VoucherType string

const (
	VoucherPercentage VoucherType = "PERCENTAGE"
	VoucherFixed      VoucherType = "FIXED"
)

func (t VoucherType) Valid() bool {
	return t == VoucherPercentage || t == VoucherFixed
}

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:text;not null;index"`
	DisplayOrder int       `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:text;not null;index"`
	Description  string    `gorm:"type:text"`
	BasePrice    int64     `gorm:"not null;default:0"`
	ImageURL     string    `gorm:"type:text"`
	IsBestSeller bool      `gorm:"not null;default:false"`
	IsOutOfStock bool      `gorm:"not null;default:false"` // advisory only, never blocks orders
	DisplayOrder int       `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	OptionGroups []OptionGroup `gorm:"many2many:product_option_groups"`
}

func (Product) TableName() string { return "products" }

type OptionGroup struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string        `gorm:"type:text;not null;index"`
	Type         SelectionType `gorm:"type:text;not null;default:'MULTI_CHOICE'"`
	DisplayOrder int           `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Values []OptionValue `gorm:"foreignKey:OptionGroupID;constraint:OnDelete:CASCADE"`
}

func (OptionGroup) TableName() string { return "option_groups" }

type OptionValue struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OptionGroupID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:text;not null"`
	// PriceAdjustment may be negative (e.g. smaller size).
	PriceAdjustment int64 `gorm:"not null;default:0"`
	IsOutOfStock    bool  `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`

	OptionGroup *OptionGroup `gorm:"foreignKey:OptionGroupID"`
}

func (OptionValue) TableName() string { return "option_values" }

type Voucher struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string      `gorm:"type:text;not null;uniqueIndex"`
	Description string      `gorm:"type:text"`
	Type        VoucherType `gorm:"type:text;not null"`
	// Value is percentage points for PERCENTAGE, a currency amount for FIXED.
	Value         int64  `gorm:"not null"`
	MinOrderValue int64  `gorm:"not null;default:0"`
	MaxDiscount   *int64 // cap, only meaningful for PERCENTAGE
	IsActive      bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Voucher) TableName() string { return "vouchers" }

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName    string    `gorm:"type:text;not null"`
	CustomerPhone   string    `gorm:"type:text;not null"`
	CustomerAddress string    `gorm:"type:text;not null"`
	CustomerNote    string    `gorm:"type:text"`

	SubTotal       int64 `gorm:"not null"`
	DeliveryFee    int64 `gorm:"not null;default:0"`
	DiscountAmount int64 `gorm:"not null;default:0"`
	TotalAmount    int64 `gorm:"not null"`

	Status         OrderStatus    `gorm:"type:text;not null;default:'ORDER_STATUS_NEW';index"`
	PaymentMethod  PaymentMethod  `gorm:"type:text;not null;default:'PAYMENT_CASH'"`
	DeliveryMethod DeliveryMethod `gorm:"type:text;not null"`
	// VoucherCode is set only when the voucher produced a discount > 0.
	VoucherCode *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	// ProductName and ItemPrice are snapshots taken at order time.
	ProductName string `gorm:"type:text;not null"`
	Quantity    uint32 `gorm:"type:int;not null"`
	// ItemPrice = product base price + sum of selected option adjustments.
	ItemPrice int64  `gorm:"not null"`
	ItemNote  string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`

	Options []OrderItemOption `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderItemOption struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	OptionName  string    `gorm:"type:text;not null"`
	ValueName   string    `gorm:"type:text;not null"`
	AddedPrice  int64     `gorm:"not null"`
}

func (OrderItemOption) TableName() string { return "order_item_options" }
