package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assetvault/inventory-system/internal/api/middleware"
	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

type stubIdentityService struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, identity *domain.RawIdentity) error
	enrichFn func(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error)
}

func (s *stubIdentityService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubIdentityService) Logout(ctx context.Context, identity *domain.RawIdentity) error {
	return s.logoutFn(ctx, identity)
}

func (s *stubIdentityService) Enrich(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error) {
	return s.enrichFn(ctx, identity)
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	stub := &stubIdentityService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{
				AccessToken: "token123",
				ExpiresAt:   expires,
				User:        &domain.AuthenticatedUser{ID: "u1", Email: email, Name: "Alice", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["redirect_to"] != "/admin/dashboard" {
		t.Fatalf("expected admin redirect, got %v", resp["redirect_to"])
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.SessionCookie {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if cookies[0].Value != "token123" || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookies[0])
	}
}

func TestAuthHandler_Login_UserRedirect(t *testing.T) {
	stub := &stubIdentityService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				AccessToken: "t",
				ExpiresAt:   time.Now().Add(time.Hour),
				User:        &domain.AuthenticatedUser{ID: "u2", Email: email, Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"bob@example.com","password":"pw"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect_to"] != "/user/dashboard" {
		t.Fatalf("expected user redirect, got %v", resp["redirect_to"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubIdentityService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubIdentityService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "not-json")
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	stub := &stubIdentityService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"password":"secret"}`)
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesSession(t *testing.T) {
	var revoked *domain.RawIdentity
	stub := &stubIdentityService{
		logoutFn: func(ctx context.Context, identity *domain.RawIdentity) error {
			revoked = identity
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.IdentityKey, &domain.RawIdentity{ID: "u1", TokenID: "jti-1"})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoked == nil || revoked.TokenID != "jti-1" {
		t.Fatalf("expected revocation of jti-1, got %+v", revoked)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	stub := &stubIdentityService{
		logoutFn: func(ctx context.Context, identity *domain.RawIdentity) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginPage_Anonymous(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityService{})

	c, rec := newTestContext(t, http.MethodGet, "/login", "")
	if err := handler.LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginPage_AuthenticatedRedirects(t *testing.T) {
	stub := &stubIdentityService{
		enrichFn: func(ctx context.Context, identity *domain.RawIdentity) (*domain.AuthenticatedUser, error) {
			return &domain.AuthenticatedUser{ID: identity.ID, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/login", "")
	c.Set(middleware.IdentityKey, &domain.RawIdentity{ID: "u2"})

	if err := handler.LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/user/dashboard" {
		t.Fatalf("expected /user/dashboard, got %s", loc)
	}
}
