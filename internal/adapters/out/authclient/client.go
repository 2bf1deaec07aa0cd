// Package authclient is the HTTP client for the auth collaborator. Token
// issuance and user registration live in that service; this side only
// resolves bearer tokens to claims.
package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrTokenRejected reports a token the auth service refused: missing,
// malformed, expired, or revoked. Distinct from transport failures so the
// HTTP layer can answer 401 instead of 500.
var ErrTokenRejected = errors.New("token rejected by auth service")

type verifyResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Client verifies bearer tokens against the auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an auth client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// Verify resolves a bearer token to claims. A 401/403 answer maps to
// ErrTokenRejected; any other non-200 answer or transport failure is an
// ordinary error.
func (c *Client) Verify(ctx context.Context, token string) (ports.AuthClaims, error) {
	if token == "" {
		return ports.AuthClaims{}, ErrTokenRejected
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/verify", nil)
	if err != nil {
		return ports.AuthClaims{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return ports.AuthClaims{}, ErrTokenRejected
	default:
		return ports.AuthClaims{}, fmt.Errorf("verify token: unexpected status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.AuthClaims{}, fmt.Errorf("verify token: decode response: %w", err)
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("verify token: %w", err)
	}
	role := order.Role(body.Role)
	if err = role.Validate(); err != nil {
		return ports.AuthClaims{}, fmt.Errorf("verify token: %w", err)
	}

	return ports.AuthClaims{UserID: userID, Role: role}, nil
}
