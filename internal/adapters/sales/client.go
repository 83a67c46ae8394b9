// Package sales is the HTTP adapter for the external daily sales total
// lookup. The remote endpoint is an opaque RPC keyed by calendar date.
package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client fetches daily sales totals over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the sales client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a sales lookup client for the given base URL.
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

var _ portssvc.SalesLookupSvc = (*Client)(nil)

type salesTotalResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// FetchSalesTotal retrieves the recorded sales total for one date.
func (c *Client) FetchSalesTotal(ctx context.Context, date string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/sales-total?date=%s", c.baseURL, url.QueryEscape(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build sales lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: unexpected status %s", apperrors.ErrLookupFailed, resp.Status)
	}

	var body salesTotalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrLookupFailed, err)
	}
	return body.Total, nil
}
