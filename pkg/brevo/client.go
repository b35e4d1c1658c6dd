// Package brevo implements a minimal client for the Brevo transactional
// email API (https://developers.brevo.com/reference/sendtransacemail).
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mhenry-dev/portfolio-api/pkg/httpclient"
)

// DefaultEndpoint is Brevo's transactional email endpoint.
const DefaultEndpoint = "https://api.brevo.com/v3/smtp/email"

// Contact identifies an email sender or recipient.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Message is the JSON payload for a single transactional email.
type Message struct {
	Sender      Contact   `json:"sender"`
	To          []Contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

// Sender sends a transactional email. Satisfied by *Client; mocked in tests.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Client calls the Brevo API with an account API key.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient httpclient.Client
}

// NewClient creates a Brevo client using the default API endpoint.
func NewClient(apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: httpClient,
	}
}

// Send issues a single synchronous POST to the Brevo API. Success is any 2xx
// response; any other status or transport failure is returned as an error
// carrying the response body text. No retries are attempted.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil || len(body) == 0 {
			return fmt.Errorf("email API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
