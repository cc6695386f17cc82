package ports

import (
	"context"
	"time"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// LoginResult carries the session token and its enriched owner.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.AuthenticatedUser
}

// IdentityService owns session establishment, teardown, and identity
// enrichment.
type IdentityService interface {
	// Login exchanges email/password with the identity provider and enriches
	// the resulting identity.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout revokes the session token until its natural expiry.
	Logout(ctx context.Context, identity *domain.RawIdentity) error
	// Enrich attaches the effective role and display name to a raw identity.
	// Precedence for role: profile row, then provider metadata hint, then
	// "user". Same order for name, with the raw email as the final default.
	// A nil identity enriches to nil.
	Enrich(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error)
}
