package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB           *gorm.DB
	Categories   CategoryRepo
	Products     ProductRepo
	OptionGroups OptionGroupRepo
	OptionValues OptionValueRepo
	Vouchers     VoucherRepo
	Orders       OrderRepo
	OrderItems   OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		Categories:   NewCategoryRepo(db),
		Products:     NewProductRepo(db),
		OptionGroups: NewOptionGroupRepo(db),
		OptionValues: NewOptionValueRepo(db),
		Vouchers:     NewVoucherRepo(db),
		Orders:       NewOrderRepo(db),
		OrderItems:   NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// WithTx runs fn against a transaction-scoped Repository. All writes inside
// commit together or not at all.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
