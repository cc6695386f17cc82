package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/api/middleware"
	"github.com/assetvault/inventory-system/internal/core/domain"
)

// currentUser extracts the enriched user a guard stored on the context. Its
// presence proves the guard ran; a route wired without one is a bug, so the
// request fails closed with 401.
func currentUser(c echo.Context) (*domain.AuthenticatedUser, error) {
	user := middleware.UserFrom(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
