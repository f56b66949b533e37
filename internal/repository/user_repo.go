package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"climate-registry/internal/model"
	pkgErrors "climate-registry/pkg/responses"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	UpdateLastLogin(id int64, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "create user failed", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query user failed", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "query user failed", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(id int64, at time.Time) error {
	err := r.db.Model(&model.User{}).Where("id = ?", id).Update("last_login_at", at).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "update last login failed", err)
	}
	return nil
}
