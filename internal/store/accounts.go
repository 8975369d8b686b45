// Package store wraps the database queries used by the handlers. Every
// resume query carries the owner's id so records never leak between accounts
package store

import (
	"bitwise74/resume-api/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Accounts struct {
	db *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// FindByEmail looks up an account by its exact email
func (a *Accounts) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := a.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (a *Accounts) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User

	err := a.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (a *Accounts) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64

	err := a.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts the user together with its profile in one transaction.
// A unique constraint violation is reported as ErrDuplicateEmail
func (a *Accounts) Create(ctx context.Context, user *model.User, name string) error {
	if user.Role == "" {
		user.Role = model.RoleApplicant
	}

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile", "Resumes").Create(user).Error; err != nil {
			return err
		}

		user.Profile = model.Profile{
			UserID: user.ID,
			Email:  user.Email,
			Name:   name,
		}

		return tx.Create(&user.Profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}

		return err
	}

	return nil
}
