// Hand-written mocks following the mockery expecter style.

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of the TokenService interface
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	ret := _m.Called(userID, roles)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_e *MockTokenService_Expecter) GenerateTokens(userID interface{}, roles interface{}) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, roles)
}

func (_m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	ret := _m.Called(tokenString, secret)

	var r0 *jwt.Token
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*jwt.Token)
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}, secret interface{}) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString, secret)
}

func (_m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	ret := _m.Called()

	return ret.Get(0).(time.Duration)
}

func (_e *MockTokenService_Expecter) GetRefreshTokenDuration() *mock.Call {
	return _e.mock.On("GetRefreshTokenDuration")
}

// NewMockTokenService creates a new instance of MockTokenService.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
