package repository

import (
	"context"
	"errors"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	// BulkCreate inserts the items and backfills their generated IDs.
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	BulkCreateOptions(ctx context.Context, opts []models.OrderItemOption) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Options").Create(&items).Error
}

func (r *orderItemRepo) BulkCreateOptions(ctx context.Context, opts []models.OrderItemOption) error {
	if len(opts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&opts).Error
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Preload("Options").
		Where("order_id = ?", orderID).Order("created_at ASC, id ASC").Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}

func (r *orderItemRepo) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
