// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSubcategoryRepository is a mock implementation of the SubcategoryRepository interface
type MockSubcategoryRepository struct {
	mock.Mock
}

type MockSubcategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSubcategoryRepository) EXPECT() *MockSubcategoryRepository_Expecter {
	return &MockSubcategoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockSubcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Subcategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Subcategory)
	}

	return r0, ret.Error(1)
}

func (_e *MockSubcategoryRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockSubcategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Subcategory, error) {
	ret := _m.Called(ctx, slug)

	var r0 *entity.Subcategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Subcategory)
	}

	return r0, ret.Error(1)
}

func (_e *MockSubcategoryRepository_Expecter) FindBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("FindBySlug", ctx, slug)
}

func (_m *MockSubcategoryRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	ret := _m.Called(ctx, categoryID)

	var r0 []*entity.Subcategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Subcategory)
	}

	return r0, ret.Error(1)
}

func (_e *MockSubcategoryRepository_Expecter) ListByCategory(ctx interface{}, categoryID interface{}) *mock.Call {
	return _e.mock.On("ListByCategory", ctx, categoryID)
}

func (_m *MockSubcategoryRepository) FindConflict(ctx context.Context, categoryID uuid.UUID, name string, slug string, excludeID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, categoryID, name, slug, excludeID)

	return ret.String(0), ret.Error(1)
}

func (_e *MockSubcategoryRepository_Expecter) FindConflict(ctx interface{}, categoryID interface{}, name interface{}, slug interface{}, excludeID interface{}) *mock.Call {
	return _e.mock.On("FindConflict", ctx, categoryID, name, slug, excludeID)
}

func (_m *MockSubcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	ret := _m.Called(ctx, subcategory)

	return ret.Error(0)
}

func (_e *MockSubcategoryRepository_Expecter) Create(ctx interface{}, subcategory interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, subcategory)
}

func (_m *MockSubcategoryRepository) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	ret := _m.Called(ctx, subcategory)

	return ret.Error(0)
}

func (_e *MockSubcategoryRepository_Expecter) Update(ctx interface{}, subcategory interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, subcategory)
}

func (_m *MockSubcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockSubcategoryRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockSubcategoryRepository creates a new instance of MockSubcategoryRepository.
func NewMockSubcategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubcategoryRepository {
	m := &MockSubcategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
