// Hand-written mocks following the mockery expecter style.

package service

import (
	"context"

	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMediaStorage is a mock implementation of the MediaStorage interface
type MockMediaStorage struct {
	mock.Mock
}

type MockMediaStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMediaStorage) EXPECT() *MockMediaStorage_Expecter {
	return &MockMediaStorage_Expecter{mock: &_m.Mock}
}

func (_m *MockMediaStorage) Upload(ctx context.Context, content []byte, filename string, contentType string, folder string) (*service.UploadedMedia, error) {
	ret := _m.Called(ctx, content, filename, contentType, folder)

	var r0 *service.UploadedMedia
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.UploadedMedia)
	}

	return r0, ret.Error(1)
}

func (_e *MockMediaStorage_Expecter) Upload(ctx interface{}, content interface{}, filename interface{}, contentType interface{}, folder interface{}) *mock.Call {
	return _e.mock.On("Upload", ctx, content, filename, contentType, folder)
}

func (_m *MockMediaStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

func (_e *MockMediaStorage_Expecter) Delete(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

// NewMockMediaStorage creates a new instance of MockMediaStorage.
func NewMockMediaStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaStorage {
	m := &MockMediaStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
