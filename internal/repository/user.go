package repository

import (
	"context" // Request-scoped cancellation

	"wallet_ledger/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository is the credential store
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update writes the mutable columns of an existing user
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Model(user).
		Select("email", "password", "first_name", "last_name", "updated_at"). // Write zero values too
		Updates(user)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // User vanished between read and write
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
