package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is a profile row in the users table. The ID matches the credential
// held by the identity provider.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityHints are the metadata the identity provider attached to a
// credential when it was provisioned. They are fallbacks only; profile rows
// take precedence during enrichment.
type IdentityHints struct {
	Name string
	Role string
}

// RawIdentity is the result of exchanging a session token: the credential's
// id and email plus the token bookkeeping needed for revocation. It carries
// no effective role; that is the enricher's job.
type RawIdentity struct {
	ID        string
	Email     string
	TokenID   string
	ExpiresAt time.Time
	Hints     IdentityHints
}

// AuthenticatedUser is a raw identity enriched with its effective role and
// display name. Guards and services reason about this type only.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// DashboardPath returns the dashboard route owned by a role. Unknown roles
// land on the user dashboard.
func DashboardPath(role string) string {
	if role == RoleAdmin {
		return "/admin/dashboard"
	}
	return "/user/dashboard"
}
