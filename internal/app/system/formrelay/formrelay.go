// Package formrelay delivers contact form drafts to the configured
// third-party form-processing endpoint. The endpoint is opaque: one JSON
// POST in, 2xx or a structured error body out. No retries.
package formrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sovramarkets/sovrasite/internal/app/system/leadform"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failure response we read when looking for
// a structured error message.
const maxErrorBody = 64 * 1024

// DefaultTimeout bounds the outbound call when config does not override it.
const DefaultTimeout = 15 * time.Second

// Client posts submissions to the form endpoint. Implements leadform.Sender.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// New creates a relay client. An empty endpoint is allowed; Send then fails
// fast with leadform.ErrNotConfigured without touching the network.
func New(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      logger,
	}
}

// payload is the wire shape the form endpoint accepts.
type payload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Message      string `json:"message"`
}

// errorBody is the structured failure shape the endpoint may return.
type errorBody struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Send posts the draft. Returns nil on any 2xx, *leadform.ServerError with
// the endpoint's first error message on other statuses, and a wrapped
// transport error on network failure.
func (c *Client) Send(ctx context.Context, d leadform.Draft) error {
	if c.endpoint == "" {
		return leadform.ErrNotConfigured
	}

	body, err := json.Marshal(payload{
		Name:         d.Name,
		Email:        d.Email,
		Organization: d.Organization,
		Role:         d.Role,
		Message:      d.Message,
	})
	if err != nil {
		return fmt.Errorf("encode form payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("form endpoint unreachable", zap.Error(err))
		return fmt.Errorf("post to form endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := firstErrorMessage(resp.Body)
	c.log.Warn("form endpoint rejected submission",
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg))
	return &leadform.ServerError{Message: msg}
}

// firstErrorMessage extracts errors[0].message from a failure body, or
// returns "" when the body is not in the expected shape.
func firstErrorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&eb); err != nil {
		return ""
	}
	if len(eb.Errors) == 0 {
		return ""
	}
	return eb.Errors[0].Message
}
