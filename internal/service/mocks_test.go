package service_test

import (
	"context"

	"smartmenu-service/internal/models"
	"smartmenu-service/internal/repository"

	"github.com/google/uuid"
)

// Func-field mocks; a nil func means "succeed with zero values".

type MockCategoryRepo struct {
	CreateFunc       func(ctx context.Context, c *models.Category) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListFunc         func(ctx context.Context) ([]models.Category, error)
	ListMenuFunc     func(ctx context.Context) ([]models.Category, error)
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepo) ListMenu(ctx context.Context) ([]models.Category, error) {
	if m.ListMenuFunc != nil {
		return m.ListMenuFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockProductRepo struct {
	CreateFunc              func(ctx context.Context, p *models.Product) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListFunc                func(ctx context.Context) ([]models.Product, error)
	BatchGetByIDsFunc       func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	UpdateFieldsFunc        func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	ReplaceOptionGroupsFunc func(ctx context.Context, p *models.Product, groups []models.OptionGroup) error
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockProductRepo) ReplaceOptionGroups(ctx context.Context, p *models.Product, groups []models.OptionGroup) error {
	if m.ReplaceOptionGroupsFunc != nil {
		return m.ReplaceOptionGroupsFunc(ctx, p, groups)
	}
	return nil
}

type MockOptionGroupRepo struct {
	CreateFunc        func(ctx context.Context, g *models.OptionGroup) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error)
	ListFunc          func(ctx context.Context) ([]models.OptionGroup, error)
	BatchGetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]models.OptionGroup, error)
	UpdateFieldsFunc  func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockOptionGroupRepo) Create(ctx context.Context, g *models.OptionGroup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	return nil
}

func (m *MockOptionGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OptionGroup, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOptionGroupRepo) List(ctx context.Context) ([]models.OptionGroup, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockOptionGroupRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionGroup, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockOptionGroupRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockOptionGroupRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockOptionValueRepo struct {
	CreateFunc        func(ctx context.Context, v *models.OptionValue) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.OptionValue, error)
	BatchGetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error)
	UpdateFieldsFunc  func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockOptionValueRepo) Create(ctx context.Context, v *models.OptionValue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *MockOptionValueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OptionValue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOptionValueRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockOptionValueRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockOptionValueRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockVoucherRepo struct {
	CreateFunc          func(ctx context.Context, v *models.Voucher) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.Voucher, error)
	GetActiveByCodeFunc func(ctx context.Context, code string) (*models.Voucher, error)
	GetByCodeFunc       func(ctx context.Context, code string) (*models.Voucher, error)
	ListFunc            func(ctx context.Context) ([]models.Voucher, error)
	UpdateFieldsFunc    func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockVoucherRepo) Create(ctx context.Context, v *models.Voucher) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *MockVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Voucher, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVoucherRepo) GetActiveByCode(ctx context.Context, code string) (*models.Voucher, error) {
	if m.GetActiveByCodeFunc != nil {
		return m.GetActiveByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockVoucherRepo) GetByCode(ctx context.Context, code string) (*models.Voucher, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockVoucherRepo) List(ctx context.Context) ([]models.Voucher, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockVoucherRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockVoucherRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockOrderRepo struct {
	CreateFunc       func(ctx context.Context, o *models.Order) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	ListFunc         func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	ExistsFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	WithTxFunc       func(ctx context.Context, fn func(tx *repository.Repository) error) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(tx *repository.Repository) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(nil)
}

type MockOrderItemRepo struct {
	BulkCreateFunc        func(ctx context.Context, items []models.OrderItem) error
	BulkCreateOptionsFunc func(ctx context.Context, opts []models.OrderItemOption) error
	GetByOrderIDFunc      func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	CountByOrderIDFunc    func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) BulkCreateOptions(ctx context.Context, opts []models.OrderItemOption) error {
	if m.BulkCreateOptionsFunc != nil {
		return m.BulkCreateOptionsFunc(ctx, opts)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.CountByOrderIDFunc != nil {
		return m.CountByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

// mockRepos bundles the per-entity mocks into a repository.Repository so the
// services under test see their usual dependency shape.
type mockRepos struct {
	Categories   *MockCategoryRepo
	Products     *MockProductRepo
	OptionGroups *MockOptionGroupRepo
	OptionValues *MockOptionValueRepo
	Vouchers     *MockVoucherRepo
	Orders       *MockOrderRepo
	OrderItems   *MockOrderItemRepo
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		Categories:   &MockCategoryRepo{},
		Products:     &MockProductRepo{},
		OptionGroups: &MockOptionGroupRepo{},
		OptionValues: &MockOptionValueRepo{},
		Vouchers:     &MockVoucherRepo{},
		Orders:       &MockOrderRepo{},
		OrderItems:   &MockOrderItemRepo{},
	}
}

func (m *mockRepos) Repo() *repository.Repository {
	return &repository.Repository{
		Categories:   m.Categories,
		Products:     m.Products,
		OptionGroups: m.OptionGroups,
		OptionValues: m.OptionValues,
		Vouchers:     m.Vouchers,
		Orders:       m.Orders,
		OrderItems:   m.OrderItems,
	}
}

// useSelfTx makes WithTx run fn against the same mock-backed repository,
// which is how the production implementation behaves inside a transaction.
func (m *mockRepos) useSelfTx() {
	m.Orders.WithTxFunc = func(ctx context.Context, fn func(tx *repository.Repository) error) error {
		return fn(m.Repo())
	}
}

// productsByID answers BatchGetByIDs from a fixed product set.
func productsByID(products ...models.Product) func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
		out := make([]models.Product, 0, len(ids))
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				out = append(out, p)
			}
		}
		return out, nil
	}
}

func valuesByID(values ...models.OptionValue) func(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error) {
	byID := make(map[uuid.UUID]models.OptionValue, len(values))
	for _, v := range values {
		byID[v.ID] = v
	}
	return func(ctx context.Context, ids []uuid.UUID) ([]models.OptionValue, error) {
		out := make([]models.OptionValue, 0, len(ids))
		for _, id := range ids {
			if v, ok := byID[id]; ok {
				out = append(out, v)
			}
		}
		return out, nil
	}
}
