// Package paymentclient is the HTTP client for the payment collaborator.
// Only the outcome of a prepaid card charge matters to the order workflow.
package paymentclient

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

type confirmRequest struct {
	OrderID     string `json:"orderId"`
	AmountCents int64  `json:"amountCents"`
}

type confirmResponse struct {
	Approved bool `json:"approved"`
}

// Client confirms prepaid charges against the payment service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a payment client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// ConfirmPrepaid reports whether the prepaid card charge for the order
// succeeded. The boolean is the charge outcome; errors are transport
// failures only.
func (c *Client) ConfirmPrepaid(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (bool, error) {
	payload, err := json.Marshal(confirmRequest{
		OrderID:     orderID.String(),
		AmountCents: amount.Cents(),
	})
	if err != nil {
		return false, err
	}

	url := c.baseURL + "/api/payments/confirm"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("confirm payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("confirm payment: unexpected status %d", resp.StatusCode)
	}

	var body confirmResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("confirm payment: decode response: %w", err)
	}

	return body.Approved, nil
}

// AlwaysApprove approves every charge. Used when no payment service is
// configured, typically in local development.
type AlwaysApprove struct{}

func NewAlwaysApprove() AlwaysApprove {
	return AlwaysApprove{}
}

func (AlwaysApprove) ConfirmPrepaid(context.Context, kernel.UUID, kernel.Money) (bool, error) {
	return true, nil
}
