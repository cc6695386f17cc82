package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

// UserKey is the echo context key holding the enriched
// *domain.AuthenticatedUser once a guard has run.
const UserKey = "user"

const loginPath = "/login"

// Enricher attaches role and display name to a raw identity; it is the
// identity service seen through the narrowest possible interface.
type Enricher interface {
	Enrich(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error)
}

// PageGuard enforces the page-level redirect rules before any data fetch:
// anonymous requests go to the login page, and a wrong-role request goes to
// the dashboard matching the caller's own role.
func PageGuard(enricher Enricher, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return c.Redirect(http.StatusFound, loginPath)
			}

			user, err := enricher.Enrich(c.Request().Context(), identity)
			if err != nil {
				return err
			}
			if user.Role != role {
				return c.Redirect(http.StatusFound, domain.DashboardPath(user.Role))
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// RequireRole is the API variant of the guard: JSON errors instead of
// redirects. With no roles listed, any authenticated caller passes.
func RequireRole(enricher Enricher, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := enricher.Enrich(c.Request().Context(), identity)
			if err != nil {
				return err
			}
			if len(allowed) > 0 {
				if _, ok := allowed[user.Role]; !ok {
					return domain.ErrForbidden
				}
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the enriched user set by a guard, or nil when no guard
// ran on the route.
func UserFrom(c echo.Context) *domain.AuthenticatedUser {
	user, _ := c.Get(UserKey).(*domain.AuthenticatedUser)
	return user
}
