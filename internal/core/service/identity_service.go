package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// RevocationStore abstracts the session revocation list (Redis).
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IdentityService implements login, logout, and identity enrichment.
type IdentityService struct {
	users    ports.UserRepository
	provider ports.IdentityClient
	sessions RevocationStore
	log      zerolog.Logger
}

func NewIdentityService(users ports.UserRepository, provider ports.IdentityClient, sessions RevocationStore, log zerolog.Logger) *IdentityService {
	return &IdentityService{users: users, provider: provider, sessions: sessions, log: log}
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	grant, err := s.provider.PasswordGrant(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := s.Enrich(ctx, &grant.Identity)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session established")

	return &ports.LoginResult{
		AccessToken: grant.AccessToken,
		ExpiresAt:   grant.ExpiresAt,
		User:        user,
	}, nil
}

// Logout marks the token revoked until its natural expiry; the session
// resolver treats revoked tokens as anonymous from then on.
func (s *IdentityService) Logout(ctx context.Context, identity *domain.RawIdentity) error {
	if identity == nil || identity.TokenID == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return err
	}
	s.log.Info().Str("user_id", identity.ID).Msg("session revoked")
	return nil
}

// Enrich resolves the effective role and display name for a raw identity.
//
// Role precedence: profile row, then provider metadata hint, then the
// literal "user". Name precedence: profile row, then metadata hint, then
// the raw email. This chain determines which dashboard a login reaches,
// so it must not be reordered.
func (s *IdentityService) Enrich(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error) {
	if identity == nil {
		return nil, nil
	}

	var profile *domain.User
	p, err := s.users.FindByID(ctx, identity.ID)
	switch {
	case err == nil:
		profile = p
	case errors.Is(err, domain.ErrUserNotFound):
		// No profile row: fall through to the metadata hints.
	default:
		return nil, err
	}

	role := domain.RoleUser
	if profile != nil && profile.Role != "" {
		role = profile.Role
	} else if identity.Hints.Role != "" {
		role = identity.Hints.Role
	}

	name := identity.Email
	if profile != nil && profile.Name != "" {
		name = profile.Name
	} else if identity.Hints.Name != "" {
		name = identity.Hints.Name
	}

	return &domain.AuthenticatedUser{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  name,
		Role:  role,
	}, nil
}
