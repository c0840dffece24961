// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	ret := _m.Called(ctx, slug)

	var r0 *entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("FindBySlug", ctx, slug)
}

func (_m *MockProductRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	ret := _m.Called(ctx, storeID)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) ListByStore(ctx interface{}, storeID interface{}) *mock.Call {
	return _e.mock.On("ListByStore", ctx, storeID)
}

func (_m *MockProductRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	ret := _m.Called(ctx, query, limit)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) Search(ctx interface{}, query interface{}, limit interface{}) *mock.Call {
	return _e.mock.On("Search", ctx, query, limit)
}

func (_m *MockProductRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Product, error) {
	ret := _m.Called(ctx, limit)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) ListLatest(ctx interface{}, limit interface{}) *mock.Call {
	return _e.mock.On("ListLatest", ctx, limit)
}

func (_m *MockProductRepository) FindConflict(ctx context.Context, slug string, excludeID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, slug, excludeID)

	return ret.String(0), ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindConflict(ctx interface{}, slug interface{}, excludeID interface{}) *mock.Call {
	return _e.mock.On("FindConflict", ctx, slug, excludeID)
}

func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Update(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
