package ports

import (
	"context"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// UserRepository persists profile rows in the users table.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	// FindByID returns domain.ErrUserNotFound when no profile row exists.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users ordered by created_at descending.
	List(ctx context.Context) ([]domain.User, error)
}
