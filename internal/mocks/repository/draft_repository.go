// Hand-written mocks following the mockery expecter style.

package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDraftRepository is a mock implementation of the DraftRepository interface
type MockDraftRepository struct {
	mock.Mock
}

type MockDraftRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDraftRepository) EXPECT() *MockDraftRepository_Expecter {
	return &MockDraftRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockDraftRepository) FindByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) (*entity.RegistrationDraft, error) {
	ret := _m.Called(ctx, ownerID, kind)

	var r0 *entity.RegistrationDraft
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.RegistrationDraft)
	}

	return r0, ret.Error(1)
}

func (_e *MockDraftRepository_Expecter) FindByOwnerAndKind(ctx interface{}, ownerID interface{}, kind interface{}) *mock.Call {
	return _e.mock.On("FindByOwnerAndKind", ctx, ownerID, kind)
}

func (_m *MockDraftRepository) Save(ctx context.Context, draft *entity.RegistrationDraft) error {
	ret := _m.Called(ctx, draft)

	return ret.Error(0)
}

func (_e *MockDraftRepository_Expecter) Save(ctx interface{}, draft interface{}) *mock.Call {
	return _e.mock.On("Save", ctx, draft)
}

func (_m *MockDraftRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) error {
	ret := _m.Called(ctx, ownerID, kind)

	return ret.Error(0)
}

func (_e *MockDraftRepository_Expecter) Delete(ctx interface{}, ownerID interface{}, kind interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, ownerID, kind)
}

// NewMockDraftRepository creates a new instance of MockDraftRepository.
func NewMockDraftRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDraftRepository {
	m := &MockDraftRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
