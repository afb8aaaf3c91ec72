package service

import (
	"context"
	"strings"
	"time"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/repository"

	"github.com/google/uuid"
)

type catalogService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *catalogService) Menu(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories.ListMenu(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	now := s.now()
	c := &models.Category{
		Name:         strings.TrimSpace(in.Name),
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.repo.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*models.Category, error) {
	c, err := s.repo.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.DisplayOrder != nil {
		fields["display_order"] = *patch.DisplayOrder
	}
	if len(fields) == 0 {
		return c, nil
	}
	fields["updated_at"] = s.now()

	if err := s.repo.Categories.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Categories.GetByID(ctx, id)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	cat, err := s.repo.Categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	now := s.now()
	p := &models.Product{
		CategoryID:   in.CategoryID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		ImageURL:     in.ImageURL,
		IsBestSeller: in.IsBestSeller,
		IsOutOfStock: in.IsOutOfStock,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.Products.List(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}
	if patch.CategoryID != nil {
		cat, err := s.repo.Categories.GetByID(ctx, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, ErrCategoryNotFound
		}
		fields["category_id"] = *patch.CategoryID
	}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.BasePrice != nil {
		fields["base_price"] = *patch.BasePrice
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.IsBestSeller != nil {
		fields["is_best_seller"] = *patch.IsBestSeller
	}
	if patch.IsOutOfStock != nil {
		fields["is_out_of_stock"] = *patch.IsOutOfStock
	}
	if patch.DisplayOrder != nil {
		fields["display_order"] = *patch.DisplayOrder
	}
	if len(fields) == 0 {
		return p, nil
	}
	fields["updated_at"] = s.now()

	if err := s.repo.Products.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, id)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) LinkProductOptionGroups(ctx context.Context, productID uuid.UUID, groupIDs []uuid.UUID) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	groups, err := s.repo.OptionGroups.BatchGetByIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	if len(groups) != len(dedupe(groupIDs)) {
		return nil, ErrOptionGroupNotFound
	}

	if err := s.repo.Products.ReplaceOptionGroups(ctx, p, groups); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, productID)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *catalogService) CreateOptionGroup(ctx context.Context, in OptionGroupInput) (*models.OptionGroup, error) {
	typ := in.Type
	if typ == "" {
		typ = models.SelectionMulti
	}

	now := s.now()
	g := &models.OptionGroup{
		Name:         strings.TrimSpace(in.Name),
		Type:         typ,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.OptionGroups.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *catalogService) GetOptionGroup(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error) {
	g, err := s.repo.OptionGroups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrOptionGroupNotFound
	}
	return g, nil
}

func (s *catalogService) ListOptionGroups(ctx context.Context) ([]models.OptionGroup, error) {
	return s.repo.OptionGroups.List(ctx)
}

func (s *catalogService) UpdateOptionGroup(ctx context.Context, id uuid.UUID, patch OptionGroupPatch) (*models.OptionGroup, error) {
	g, err := s.repo.OptionGroups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrOptionGroupNotFound
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.DisplayOrder != nil {
		fields["display_order"] = *patch.DisplayOrder
	}
	if len(fields) == 0 {
		return g, nil
	}
	fields["updated_at"] = s.now()

	if err := s.repo.OptionGroups.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.OptionGroups.GetByID(ctx, id)
}

func (s *catalogService) DeleteOptionGroup(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.OptionGroups.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOptionGroupNotFound
	}
	return nil
}

func (s *catalogService) CreateOptionValue(ctx context.Context, groupID uuid.UUID, in OptionValueInput) (*models.OptionValue, error) {
	g, err := s.repo.OptionGroups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrOptionGroupNotFound
	}

	v := &models.OptionValue{
		OptionGroupID:   groupID,
		Name:            strings.TrimSpace(in.Name),
		PriceAdjustment: in.PriceAdjustment,
		IsOutOfStock:    in.IsOutOfStock,
		CreatedAt:       s.now(),
	}
	if err := s.repo.OptionValues.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *catalogService) GetOptionValue(ctx context.Context, id uuid.UUID) (*models.OptionValue, error) {
	v, err := s.repo.OptionValues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrOptionValueNotFound
	}
	return v, nil
}

func (s *catalogService) UpdateOptionValue(ctx context.Context, id uuid.UUID, patch OptionValuePatch) (*models.OptionValue, error) {
	v, err := s.repo.OptionValues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrOptionValueNotFound
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.PriceAdjustment != nil {
		fields["price_adjustment"] = *patch.PriceAdjustment
	}
	if patch.IsOutOfStock != nil {
		fields["is_out_of_stock"] = *patch.IsOutOfStock
	}
	if len(fields) == 0 {
		return v, nil
	}

	if err := s.repo.OptionValues.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.OptionValues.GetByID(ctx, id)
}

func (s *catalogService) DeleteOptionValue(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.OptionValues.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOptionValueNotFound
	}
	return nil
}

func (s *catalogService) CreateVoucher(ctx context.Context, in VoucherInput) (*models.Voucher, error) {
	if !in.Type.Valid() {
		return nil, ErrInvalidVoucherType
	}

	code := strings.TrimSpace(in.Code)
	existing, err := s.repo.Vouchers.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCodeAlreadyExists
	}

	now := s.now()
	v := &models.Voucher{
		Code:          code,
		Description:   in.Description,
		Type:          in.Type,
		Value:         in.Value,
		MinOrderValue: in.MinOrderValue,
		MaxDiscount:   in.MaxDiscount,
		IsActive:      in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Vouchers.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *catalogService) GetVoucher(ctx context.Context, id uuid.UUID) (*models.Voucher, error) {
	v, err := s.repo.Vouchers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVoucherNotFound
	}
	return v, nil
}

func (s *catalogService) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	return s.repo.Vouchers.List(ctx)
}

func (s *catalogService) UpdateVoucher(ctx context.Context, id uuid.UUID, patch VoucherPatch) (*models.Voucher, error) {
	v, err := s.repo.Vouchers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVoucherNotFound
	}

	fields := map[string]any{}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, ErrInvalidVoucherType
		}
		fields["type"] = *patch.Type
	}
	if patch.Value != nil {
		fields["value"] = *patch.Value
	}
	if patch.MinOrderValue != nil {
		fields["min_order_value"] = *patch.MinOrderValue
	}
	if patch.MaxDiscount != nil {
		fields["max_discount"] = *patch.MaxDiscount
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if len(fields) == 0 {
		return v, nil
	}
	fields["updated_at"] = s.now()

	if err := s.repo.Vouchers.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Vouchers.GetByID(ctx, id)
}

func (s *catalogService) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Vouchers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVoucherNotFound
	}
	return nil
}
