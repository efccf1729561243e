// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"retrolog/internal/models"
	"retrolog/internal/observability"

	"gorm.io/gorm"
)

// userRecord is the persisted shape of an account.
type userRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toModel() *models.User {
	return &models.User{
		ID:       models.FlexID(r.ID),
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("create", "users")()

	record := userRecord{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}
	user.ID = models.FlexID(record.ID)
	return nil
}

// GetByEmail returns (nil, nil) when no account exists for the address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer observability.TrackQuery("get_by_email", "users")()

	var record userRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.toModel(), nil
}

// GetByID returns (nil, nil) when no account exists for the id.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	defer observability.TrackQuery("get", "users")()

	var record userRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.toModel(), nil
}
