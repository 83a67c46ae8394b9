// Package ledger is the HTTP adapter for the backend ledger service. It
// POSTs normalized entries and turns non-2xx responses into submission
// errors carrying the backend's message.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
)

const defaultTimeout = 15 * time.Second

// Client submits ledger entries over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the ledger client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a ledger client for the given base URL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portssvc.LedgerSvc = (*Client)(nil)

// errorBody is the backend's structured error shape. Plain-text bodies are
// surfaced verbatim.
type errorBody struct {
	Message string `json:"message"`
}

// SubmitEntry POSTs the entry to the backend ledger. A non-2xx response
// wraps apperrors.ErrSubmissionRejected with the message from the JSON body
// when present, else the raw body text.
func (c *Client) SubmitEntry(ctx context.Context, entry dto.LedgerEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSubmissionRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Success bodies are optional and ignored.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(raw))
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		msg = parsed.Message
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("%w: %s", apperrors.ErrSubmissionRejected, msg)
}
