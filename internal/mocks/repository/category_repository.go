// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	ret := _m.Called(ctx, slug)

	var r0 *entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("FindBySlug", ctx, slug)
}

func (_m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockCategoryRepository) ListWithSubcategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) ListWithSubcategories(ctx interface{}) *mock.Call {
	return _e.mock.On("ListWithSubcategories", ctx)
}

func (_m *MockCategoryRepository) FindConflict(ctx context.Context, name string, slug string, excludeID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, name, slug, excludeID)

	return ret.String(0), ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindConflict(ctx interface{}, name interface{}, slug interface{}, excludeID interface{}) *mock.Call {
	return _e.mock.On("FindConflict", ctx, name, slug, excludeID)
}

func (_m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Create(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

func (_m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Update(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

func (_m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
