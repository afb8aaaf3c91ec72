package repository

import (
	"context"
	"errors"

	"smartmenu-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoucherRepo interface {
	Create(ctx context.Context, v *models.Voucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Voucher, error)
	// GetActiveByCode returns the voucher only if it is currently active;
	// inactive or absent codes both come back nil.
	GetActiveByCode(ctx context.Context, code string) (*models.Voucher, error)
	GetByCode(ctx context.Context, code string) (*models.Voucher, error)
	List(ctx context.Context) ([]models.Voucher, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type voucherRepo struct{ db *gorm.DB }

func NewVoucherRepo(db *gorm.DB) VoucherRepo { return &voucherRepo{db: db} }

func (r *voucherRepo) Create(ctx context.Context, v *models.Voucher) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *voucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Voucher, error) {
	var v models.Voucher
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *voucherRepo) GetActiveByCode(ctx context.Context, code string) (*models.Voucher, error) {
	var v models.Voucher
	err := r.db.WithContext(ctx).Where("code = ? AND is_active = true", code).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *voucherRepo) GetByCode(ctx context.Context, code string) (*models.Voucher, error) {
	var v models.Voucher
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *voucherRepo) List(ctx context.Context) ([]models.Voucher, error) {
	var list []models.Voucher
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *voucherRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Voucher{}).Where("id = ?", id).Updates(fields).Error
}

func (r *voucherRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Voucher{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
