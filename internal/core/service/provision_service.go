package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// ProvisionService creates login credentials through the identity provider's
// privileged admin endpoint and mirrors them as profile rows.
type ProvisionService struct {
	users    ports.UserRepository
	provider ports.IdentityClient
	log      zerolog.Logger
	now      func() time.Time
}

func NewProvisionService(users ports.UserRepository, provider ports.IdentityClient, log zerolog.Logger) *ProvisionService {
	return &ProvisionService{
		users:    users,
		provider: provider,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser provisions a credential and inserts the matching profile row.
// The role gate runs before any provider call so non-admins never reach the
// privileged endpoint.
func (s *ProvisionService) CreateUser(ctx context.Context, caller *domain.AuthenticatedUser, input ports.ProvisionUserInput) (*domain.User, error) {
	if !domain.Authorize(caller, domain.ResourceUsers, domain.ActionCreate).Allow {
		return nil, domain.ErrForbidden
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
		return nil, domain.ErrInvalidCredentials
	}

	id, err := s.provider.ProvisionCredential(ctx, ports.ProvisionCredentialInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        id,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: s.now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		// The credential exists but the profile row does not; enrichment
		// will fall back to the metadata hints until the row is repaired.
		s.log.Error().Err(err).Str("user_id", id).Msg("profile insert failed after credential provisioning")
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("role", input.Role).Str("provisioned_by", caller.ID).Msg("user provisioned")
	return user, nil
}
