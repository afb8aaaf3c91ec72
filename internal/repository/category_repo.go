package repository

import (
	"context"
	"errors"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	// ListMenu loads the full nested catalog: categories with products, their
	// option groups and values, everything ordered by display_order.
	ListMenu(ctx context.Context) ([]models.Category, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func displayOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, created_at ASC, id ASC")
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := displayOrdered(r.db.WithContext(ctx)).Find(&list).Error
	return list, err
}

func (r *categoryRepo) ListMenu(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	err := displayOrdered(r.db.WithContext(ctx)).
		Preload("Products", displayOrdered).
		Preload("Products.OptionGroups", displayOrdered).
		Preload("Products.OptionGroups.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Find(&list).Error
	return list, err
}

func (r *categoryRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
