package ports

import (
	"context"
	"time"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// SessionGrant is the result of a successful password exchange with the
// identity provider.
type SessionGrant struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    domain.RawIdentity
}

// ProvisionCredentialInput describes a login credential to create through
// the provider's privileged admin endpoint.
type ProvisionCredentialInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// IdentityClient talks to the remote identity provider.
//
// PasswordGrant authenticates with the public client key and returns
// domain.ErrInvalidCredentials on a rejected login. ProvisionCredential uses
// the privileged server-only key and returns the new credential's id;
// domain.ErrUserExists signals the email is already registered.
type IdentityClient interface {
	PasswordGrant(ctx context.Context, email, password string) (*SessionGrant, error)
	ProvisionCredential(ctx context.Context, input ProvisionCredentialInput) (string, error)
}
