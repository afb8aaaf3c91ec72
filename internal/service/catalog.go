package service

import (
	"context"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
)

type CategoryInput struct {
	Name         string
	DisplayOrder int
}

// Patch structs enumerate exactly which fields may change; nil means "leave
// as is". Applied field-by-field, never by reflection.
type CategoryPatch struct {
	Name         *string
	DisplayOrder *int
}

type ProductInput struct {
	CategoryID   uuid.UUID
	Name         string
	Description  string
	BasePrice    int64
	ImageURL     string
	IsBestSeller bool
	IsOutOfStock bool
	DisplayOrder int
}

type ProductPatch struct {
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	BasePrice    *int64
	ImageURL     *string
	IsBestSeller *bool
	IsOutOfStock *bool
	DisplayOrder *int
}

type OptionGroupInput struct {
	Name         string
	Type         models.SelectionType
	DisplayOrder int
}

type OptionGroupPatch struct {
	Name         *string
	Type         *models.SelectionType
	DisplayOrder *int
}

type OptionValueInput struct {
	Name            string
	PriceAdjustment int64
	IsOutOfStock    bool
}

type OptionValuePatch struct {
	Name            *string
	PriceAdjustment *int64
	IsOutOfStock    *bool
}

type VoucherInput struct {
	Code          string
	Description   string
	Type          models.VoucherType
	Value         int64
	MinOrderValue int64
	MaxDiscount   *int64
	IsActive      bool
}

type VoucherPatch struct {
	Description   *string
	Type          *models.VoucherType
	Value         *int64
	MinOrderValue *int64
	MaxDiscount   *int64
	IsActive      *bool
}

// CatalogService covers the administrator-facing catalog operations plus the
// public menu read. Catalog mutations never touch existing orders.
type CatalogService interface {
	// Menu returns the full nested catalog ordered for display.
	Menu(ctx context.Context) ([]models.Category, error)

	CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// LinkProductOptionGroups rewrites the set of option groups offered on a
	// product; every referenced group must exist.
	LinkProductOptionGroups(ctx context.Context, productID uuid.UUID, groupIDs []uuid.UUID) (*models.Product, error)

	CreateOptionGroup(ctx context.Context, in OptionGroupInput) (*models.OptionGroup, error)
	GetOptionGroup(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error)
	ListOptionGroups(ctx context.Context) ([]models.OptionGroup, error)
	UpdateOptionGroup(ctx context.Context, id uuid.UUID, patch OptionGroupPatch) (*models.OptionGroup, error)
	// DeleteOptionGroup removes the group together with its values.
	DeleteOptionGroup(ctx context.Context, id uuid.UUID) error

	CreateOptionValue(ctx context.Context, groupID uuid.UUID, in OptionValueInput) (*models.OptionValue, error)
	GetOptionValue(ctx context.Context, id uuid.UUID) (*models.OptionValue, error)
	UpdateOptionValue(ctx context.Context, id uuid.UUID, patch OptionValuePatch) (*models.OptionValue, error)
	DeleteOptionValue(ctx context.Context, id uuid.UUID) error

	CreateVoucher(ctx context.Context, in VoucherInput) (*models.Voucher, error)
	GetVoucher(ctx context.Context, id uuid.UUID) (*models.Voucher, error)
	ListVouchers(ctx context.Context) ([]models.Voucher, error)
	UpdateVoucher(ctx context.Context, id uuid.UUID, patch VoucherPatch) (*models.Voucher, error)
	DeleteVoucher(ctx context.Context, id uuid.UUID) error
}
