package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given database handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&m)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&m)
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return errors.Wrap(err, "failed to create user")
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          m.Name,
			"email":         m.Email,
			"password_hash": m.PasswordHash,
			"roles":         m.Roles,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

func toUserDomain(m *model.UserModel) (*entity.User, error) {
	var roles []string
	if len(m.Roles) > 0 {
		if err := json.Unmarshal(m.Roles, &roles); err != nil {
			return nil, errors.Wrap(err, "failed to decode user roles")
		}
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(roles),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) (*model.UserModel, error) {
	roles, err := json.Marshal(user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode user roles")
	}

	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Roles:        datatypes.JSON(roles),
	}, nil
}
