package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service usecase.UserUsecase
	users   *mockRepo.MockUserRepository
	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{users: users}}
	service := NewUserService(txManager, hasher, tokens, newDiscardLogger())

	return userServiceFixtures{
		service: service,
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Jordan Smith",
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	}

	fixtures.hasher.EXPECT().Hash("correct-horse-battery").Return("$2a$12$hash", nil)
	fixtures.users.EXPECT().FindByEmail(ctx, "jordan@example.com").Return(nil, repository.ErrUserNotFound)
	fixtures.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fixtures.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("access", "refresh", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "$2a$12$hash", output.User.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.User.Roles)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Jordan Smith",
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	}

	fixtures.hasher.EXPECT().Hash("correct-horse-battery").Return("$2a$12$hash", nil)
	fixtures.users.EXPECT().
		FindByEmail(ctx, "jordan@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jordan@example.com"}, nil)

	_, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jordan@example.com",
		PasswordHash: "$2a$12$hash",
		Roles:        entity.Roles{entity.RoleUser, entity.RoleSeller},
	}

	fixtures.users.EXPECT().FindByEmail(ctx, "jordan@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("correct-horse-battery", "$2a$12$hash").Return(true)
	fixtures.tokens.EXPECT().
		GenerateTokens(user.ID, []string{"user", "seller"}).
		Return("access", "refresh", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "jordan@example.com", PasswordHash: "$2a$12$hash"}

	fixtures.users.EXPECT().FindByEmail(ctx, "jordan@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("wrong", "$2a$12$hash").Return(false)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "jordan@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	// Indistinguishable from a wrong password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
