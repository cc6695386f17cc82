package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// SessionCookie is the cookie page requests carry their token in; API
// clients use the Authorization header instead.
const SessionCookie = "session"

// IdentityKey is the echo context key holding the *domain.RawIdentity for
// the request, set only when a valid session token was presented.
const IdentityKey = "identity"

// SessionRevocations is the read side of the sign-out revocation list.
type SessionRevocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Session resolves the request's session token to a raw identity.
//
// The token comes from the Authorization bearer header, falling back to the
// session cookie. Resolution never fails the request: a missing, expired,
// revoked, or malformed token leaves the request anonymous and the guards
// decide what that means per route.
func Session(jwtSecret string, revocations SessionRevocations) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			identity := identityFromClaims(claims)
			if identity.ID == "" {
				return next(c)
			}

			if identity.TokenID != "" && revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), identity.TokenID)
				if err != nil || revoked {
					return next(c)
				}
			}

			c.Set(IdentityKey, &identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the resolved identity, or nil for anonymous requests.
func IdentityFrom(c echo.Context) *domain.RawIdentity {
	identity, _ := c.Get(IdentityKey).(*domain.RawIdentity)
	return identity
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func identityFromClaims(claims jwt.MapClaims) domain.RawIdentity {
	identity := domain.RawIdentity{}
	identity.ID, _ = claims["sub"].(string)
	identity.Email, _ = claims["email"].(string)
	identity.TokenID, _ = claims["jti"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	if metadata, ok := claims["user_metadata"].(map[string]any); ok {
		identity.Hints.Name, _ = metadata["name"].(string)
		identity.Hints.Role, _ = metadata["role"].(string)
	}
	return identity
}
