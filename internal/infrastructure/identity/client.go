// Package identity implements the HTTP client for the remote identity
// provider: the public password-grant endpoint and the privileged admin
// provisioning endpoint. The privileged key lives only inside this client
// and is attached exclusively to admin requests.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetvault/inventory-system/internal/core/domain"
	"github.com/assetvault/inventory-system/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the provider endpoint and its two credentials.
type Config struct {
	BaseURL string
	// AnonKey is the public client key used for the password grant.
	AnonKey string
	// ServiceKey is the privileged server-only key; it must never be
	// written to any response or log.
	ServiceKey string
	Timeout    time.Duration
}

type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	http       *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// PasswordGrant exchanges email/password for a session. A 400 or 401 from
// the provider means the credentials were rejected.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*ports.SessionGrant, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("encode grant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build grant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("password grant: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("password grant: unexpected status %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode grant response: %w", err)
	}

	tokenID, expiresAt := tokenBookkeeping(tr.AccessToken)
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return &ports.SessionGrant{
		AccessToken: tr.AccessToken,
		ExpiresAt:   expiresAt,
		Identity: domain.RawIdentity{
			ID:        tr.User.ID,
			Email:     tr.User.Email,
			TokenID:   tokenID,
			ExpiresAt: expiresAt,
			Hints: domain.IdentityHints{
				Name: tr.User.UserMetadata.Name,
				Role: tr.User.UserMetadata.Role,
			},
		},
	}, nil
}

type provisionResponse struct {
	ID   string `json:"id"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// ProvisionCredential creates a login credential through the privileged
// admin endpoint. A 422 means the email is already registered.
func (c *Client) ProvisionCredential(ctx context.Context, input ports.ProvisionCredentialInput) (string, error) {
	body, err := json.Marshal(map[string]any{
		"email":         input.Email,
		"password":      input.Password,
		"email_confirm": true,
		"user_metadata": map[string]string{"name": input.Name, "role": input.Role},
	})
	if err != nil {
		return "", fmt.Errorf("encode provision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build provision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("provision credential: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict:
		return "", domain.ErrUserExists
	default:
		return "", fmt.Errorf("provision credential: unexpected status %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	var pr provisionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode provision response: %w", err)
	}
	if pr.ID != "" {
		return pr.ID, nil
	}
	return pr.User.ID, nil
}

// tokenBookkeeping pulls the jti and expiry out of the access token without
// verifying it; verification happens in the session middleware on every
// request.
func tokenBookkeeping(accessToken string) (string, time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return "", time.Time{}
	}
	tokenID, _ := claims["jti"].(string)
	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return tokenID, expiresAt
}

func readSnippet(r io.Reader) string {
	snippet, _ := io.ReadAll(io.LimitReader(r, 256))
	return string(snippet)
}
