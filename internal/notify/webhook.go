package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultWebhookTimeout caps a single outbound webhook call.
const DefaultWebhookTimeout = 5 * time.Second

// Poster delivers a notification message to a webhook URL. The production
// implementation posts Discord-style JSON; tests substitute a mock to assert
// call counts.
type Poster interface {
	Post(ctx context.Context, url, content string) error
}

// HTTPPoster posts `{"content": <message>}` to the webhook URL.
type HTTPPoster struct {
	client *http.Client
}

// NewHTTPPoster creates a poster with the given timeout (0 uses the default).
func NewHTTPPoster(timeout time.Duration) *HTTPPoster {
	if timeout == 0 {
		timeout = DefaultWebhookTimeout
	}
	return &HTTPPoster{client: &http.Client{Timeout: timeout}}
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Post sends the message. Any non-2xx status is reported as an error; the
// caller decides whether to surface or just log it.
func (p *HTTPPoster) Post(ctx context.Context, url, content string) error {
	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
