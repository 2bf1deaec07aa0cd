// Package catalogclient is the HTTP client for the restaurant catalog
// collaborator. Catalog and menu CRUD live in that service; the order
// workflow only needs existence checks and owner resolution.
package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

type defaultRestaurantRequest struct {
	OwnerID string `json:"ownerId"`
}

type defaultRestaurantResponse struct {
	ID string `json:"id"`
}

// Client resolves restaurants against the catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// Exists reports whether the restaurant id is known to the catalog.
func (c *Client) Exists(ctx context.Context, restaurantID kernel.UUID) (bool, error) {
	url := fmt.Sprintf("%s/api/restaurants/%s", c.baseURL, restaurantID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("check restaurant: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("check restaurant: unexpected status %d", resp.StatusCode)
	}
}

// GetOrCreateDefault resolves the restaurant owned by the given user,
// creating a default one on first use.
func (c *Client) GetOrCreateDefault(ctx context.Context, ownerID kernel.UUID) (kernel.UUID, error) {
	payload, err := json.Marshal(defaultRestaurantRequest{OwnerID: ownerID.String()})
	if err != nil {
		return kernel.UUID{}, err
	}

	url := c.baseURL + "/api/restaurants/default"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return kernel.UUID{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("resolve default restaurant: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return kernel.UUID{}, fmt.Errorf("resolve default restaurant: unexpected status %d", resp.StatusCode)
	}

	var body defaultRestaurantResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.UUID{}, fmt.Errorf("resolve default restaurant: decode response: %w", err)
	}

	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("resolve default restaurant: %w", err)
	}
	return id, nil
}
