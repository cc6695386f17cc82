package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/api/metrics"
	"github.com/assetvault/inventory-system/internal/api/middleware"
	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

// AuthHandler handles login, logout, and the login page.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token      string                    `json:"token"`
	User       *domain.AuthenticatedUser `json:"user"`
	RedirectTo string                    `json:"redirect_to"`
}

// Login authenticates a user and establishes a session.
//
// The token is returned in the body for API clients and set as the session
// cookie for browser navigation.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.AccessToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Token:      result.AccessToken,
		User:       result.User,
		RedirectTo: domain.DashboardPath(result.User.Role),
	})
}

// Logout revokes the current session and clears the cookie. Anonymous
// callers get the same 204; there is nothing to reveal.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity != nil {
		if err := h.identity.Logout(c.Request().Context(), identity); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.Inc()
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

type loginPageResponse struct {
	Title string `json:"title"`
}

// LoginPage renders the login view. A caller that already holds a valid
// session is sent straight to their dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if identity := middleware.IdentityFrom(c); identity != nil {
		user, err := h.identity.Enrich(c.Request().Context(), identity)
		if err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, domain.DashboardPath(user.Role))
	}
	return c.JSON(http.StatusOK, loginPageResponse{Title: "Sign in to manage your assets"})
}
