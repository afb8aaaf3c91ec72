package repository

import (
	"context"
	"errors"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OptionGroupRepo interface {
	Create(ctx context.Context, g *models.OptionGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error)
	List(ctx context.Context) ([]models.OptionGroup, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionGroup, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Delete removes the group and, via FK cascade, all of its values.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type optionGroupRepo struct{ db *gorm.DB }

func NewOptionGroupRepo(db *gorm.DB) OptionGroupRepo { return &optionGroupRepo{db: db} }

func (r *optionGroupRepo) Create(ctx context.Context, g *models.OptionGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *optionGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error) {
	var g models.OptionGroup
	err := r.db.WithContext(ctx).Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	}).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &g, err
}

func (r *optionGroupRepo) List(ctx context.Context) ([]models.OptionGroup, error) {
	var list []models.OptionGroup
	err := displayOrdered(r.db.WithContext(ctx)).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Find(&list).Error
	return list, err
}

func (r *optionGroupRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionGroup, error) {
	if len(ids) == 0 {
		return []models.OptionGroup{}, nil
	}
	var list []models.OptionGroup
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *optionGroupRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.OptionGroup{}).Where("id = ?", id).Updates(fields).Error
}

func (r *optionGroupRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.OptionGroup{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

type OptionValueRepo interface {
	Create(ctx context.Context, v *models.OptionValue) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OptionValue, error)
	// BatchGetByIDs loads values with their owning group preloaded; the group
	// name is needed for order-item-option snapshots.
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type optionValueRepo struct{ db *gorm.DB }

func NewOptionValueRepo(db *gorm.DB) OptionValueRepo { return &optionValueRepo{db: db} }

func (r *optionValueRepo) Create(ctx context.Context, v *models.OptionValue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *optionValueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OptionValue, error) {
	var v models.OptionValue
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *optionValueRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error) {
	if len(ids) == 0 {
		return []models.OptionValue{}, nil
	}
	var list []models.OptionValue
	err := r.db.WithContext(ctx).Preload("OptionGroup").Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *optionValueRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.OptionValue{}).Where("id = ?", id).Updates(fields).Error
}

func (r *optionValueRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.OptionValue{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
