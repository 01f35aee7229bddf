// Package userrepo persists accounts with GORM.
package userrepo

import (
	"context"
	"errors"
	"strings"

	"eats/internal/adapters/out/postgres/sqlerr"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, account *user.User) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := UserDTO{
		ID:           account.ID().Bytes(),
		Email:        account.Email(),
		PasswordHash: account.PasswordHash(),
		Role:         account.Role().String(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("email", account.Email(), err)
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, account *user.User) error {
	if err := account.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", account.ID().Bytes()).
		Updates(map[string]any{
			"email":         account.Email(),
			"password_hash": account.PasswordHash(),
		})
	if res.Error != nil {
		if sqlerr.IsUniqueViolation(res.Error) {
			return errs.NewConflictErrorWithCause("email", account.Email(), res.Error)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", account.ID().String())
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, "email", email, "email = ?", email)
}

func (r *GormUserRepository) first(ctx context.Context, param, key string, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.PasswordHash, role)
}
