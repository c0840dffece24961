// Hand-written mocks following the mockery expecter style.

package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock implementation of the QRCodeService interface
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateStoreQR(storeSlug string) ([]byte, error) {
	ret := _m.Called(storeSlug)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GenerateStoreQR(storeSlug interface{}) *mock.Call {
	return _e.mock.On("GenerateStoreQR", storeSlug)
}

// NewMockQRCodeService creates a new instance of MockQRCodeService.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
