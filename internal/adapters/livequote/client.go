// Package livequote fetches the base->local exchange rate from a public quote provider.
package livequote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Client reads one quote currency out of a `{"rates": {...}}` response.
type Client struct {
	httpClient    *http.Client
	url           string
	quoteCurrency string
	timeout       time.Duration
}

var _ portsrepo.LiveRateSource = (*Client)(nil)

// NewClient creates a quote client for the provider at url.
// A zero timeout means the caller's context is the only bound.
func NewClient(url, quoteCurrency string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:    httpClient,
		url:           url,
		quoteCurrency: strings.ToUpper(quoteCurrency),
		timeout:       timeout,
	}
}

type quoteResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the quote currency rate. It makes exactly one request.
func (c *Client) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: quote request failed: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return decimal.Zero, fmt.Errorf("%w: quote provider returned %d: %s", apperrors.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode quote: %v", apperrors.ErrUpstream, err)
	}

	rate, ok := body.Rates[c.quoteCurrency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: quote has no %s rate", apperrors.ErrUpstream, c.quoteCurrency)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quote %s rate %s is not positive", apperrors.ErrUpstream, c.quoteCurrency, rate.String())
	}
	return rate, nil
}
