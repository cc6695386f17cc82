package ports

import (
	"context"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// ProvisionUserInput is the validated payload of the user-provisioning
// endpoint.
type ProvisionUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// ProvisionService creates a new login credential plus its profile row.
// Only admins may call it; the privileged provider key never leaves the
// identity client.
type ProvisionService interface {
	CreateUser(ctx context.Context, caller *domain.AuthenticatedUser, input ProvisionUserInput) (*domain.User, error)
}
