// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShippingRateRepository is a mock implementation of the ShippingRateRepository interface
type MockShippingRateRepository struct {
	mock.Mock
}

type MockShippingRateRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockShippingRateRepository) EXPECT() *MockShippingRateRepository_Expecter {
	return &MockShippingRateRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockShippingRateRepository) FindByStoreAndCountry(ctx context.Context, storeID uuid.UUID, countryCode string) (*entity.ShippingRate, error) {
	ret := _m.Called(ctx, storeID, countryCode)

	var r0 *entity.ShippingRate
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ShippingRate)
	}

	return r0, ret.Error(1)
}

func (_e *MockShippingRateRepository_Expecter) FindByStoreAndCountry(ctx interface{}, storeID interface{}, countryCode interface{}) *mock.Call {
	return _e.mock.On("FindByStoreAndCountry", ctx, storeID, countryCode)
}

func (_m *MockShippingRateRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ShippingRate, error) {
	ret := _m.Called(ctx, storeID)

	var r0 []*entity.ShippingRate
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ShippingRate)
	}

	return r0, ret.Error(1)
}

func (_e *MockShippingRateRepository_Expecter) ListByStore(ctx interface{}, storeID interface{}) *mock.Call {
	return _e.mock.On("ListByStore", ctx, storeID)
}

func (_m *MockShippingRateRepository) Upsert(ctx context.Context, rate *entity.ShippingRate) error {
	ret := _m.Called(ctx, rate)

	return ret.Error(0)
}

func (_e *MockShippingRateRepository_Expecter) Upsert(ctx interface{}, rate interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, rate)
}

func (_m *MockShippingRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockShippingRateRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockShippingRateRepository creates a new instance of MockShippingRateRepository.
func NewMockShippingRateRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShippingRateRepository {
	m := &MockShippingRateRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
