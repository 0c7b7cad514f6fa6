package repository

import (
	"context"
	"motor/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error
}
