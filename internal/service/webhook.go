package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"confmatch/internal/model"
)

// WebhookClient posts submission payloads to the processing webhook.
// Delivery is attempt-once: no retries, and callers must never let a
// failure here surface to the submitting user.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWebhookClient creates a webhook client. An empty URL disables
// dispatch entirely.
func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsConfigured returns true if a webhook URL is set
func (c *WebhookClient) IsConfigured() bool {
	return c.url != ""
}

// Send posts the payload and returns an error on any non-2xx outcome.
func (c *WebhookClient) Send(ctx context.Context, payload *model.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
