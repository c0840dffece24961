// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a mock implementation of the StoreRepository interface
type MockStoreRepository struct {
	mock.Mock
}

type MockStoreRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStoreRepository) EXPECT() *MockStoreRepository_Expecter {
	return &MockStoreRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Store
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Store)
	}

	return r0, ret.Error(1)
}

func (_e *MockStoreRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockStoreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	ret := _m.Called(ctx, slug)

	var r0 *entity.Store
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Store)
	}

	return r0, ret.Error(1)
}

func (_e *MockStoreRepository_Expecter) FindBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("FindBySlug", ctx, slug)
}

func (_m *MockStoreRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 []*entity.Store
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Store)
	}

	return r0, ret.Error(1)
}

func (_e *MockStoreRepository_Expecter) ListByOwner(ctx interface{}, ownerID interface{}) *mock.Call {
	return _e.mock.On("ListByOwner", ctx, ownerID)
}

func (_m *MockStoreRepository) List(ctx context.Context) ([]*entity.Store, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Store
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Store)
	}

	return r0, ret.Error(1)
}

func (_e *MockStoreRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockStoreRepository) FindConflict(ctx context.Context, name string, slug string, email string, phone string, excludeID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, name, slug, email, phone, excludeID)

	return ret.String(0), ret.Error(1)
}

func (_e *MockStoreRepository_Expecter) FindConflict(ctx interface{}, name interface{}, slug interface{}, email interface{}, phone interface{}, excludeID interface{}) *mock.Call {
	return _e.mock.On("FindConflict", ctx, name, slug, email, phone, excludeID)
}

func (_m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	ret := _m.Called(ctx, store)

	return ret.Error(0)
}

func (_e *MockStoreRepository_Expecter) Create(ctx interface{}, store interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, store)
}

func (_m *MockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	ret := _m.Called(ctx, store)

	return ret.Error(0)
}

func (_e *MockStoreRepository_Expecter) Update(ctx interface{}, store interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, store)
}

func (_m *MockStoreRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error {
	ret := _m.Called(ctx, id, status)

	return ret.Error(0)
}

func (_e *MockStoreRepository_Expecter) UpdateStatus(ctx interface{}, id interface{}, status interface{}) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status)
}

func (_m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockStoreRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockStoreRepository creates a new instance of MockStoreRepository.
func NewMockStoreRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
