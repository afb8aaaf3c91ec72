package repository

import (
	"context"
	"errors"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ReplaceOptionGroups rewrites the product's option-group association edge.
	ReplaceOptionGroups(ctx context.Context, p *models.Product, groups []models.OptionGroup) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Omit("OptionGroups").Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("OptionGroups", displayOrdered).
		Preload("OptionGroups.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := displayOrdered(r.db.WithContext(ctx)).
		Preload("OptionGroups", displayOrdered).
		Find(&list).Error
	return list, err
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Select("OptionGroups").Delete(&models.Product{ID: id})
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) ReplaceOptionGroups(ctx context.Context, p *models.Product, groups []models.OptionGroup) error {
	return r.db.WithContext(ctx).Model(p).Association("OptionGroups").Replace(groups)
}
