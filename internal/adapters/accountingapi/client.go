// Package accountingapi is the HTTP client for the remote accounting API
// that owns offices, currencies, GL accounts, journal entries and reports.
package accountingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientConfig represents the configuration for the accounting API client.
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration // Default: 30 seconds
	ClientID     string
	ClientSecret string
	TokenURL     string // OAuth2 client-credentials endpoint; empty disables auth
	HTTPClient   *http.Client
}

// Client is an accounting API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ portsrepo.AccountingRepositoryFacade = (*Client)(nil)

// NewClient creates a new accounting API client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	if config.ClientID != "" && config.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     config.TokenURL,
		}
		// The token source reuses httpClient for token requests and refreshes tokens itself.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		authed := cc.Client(ctx)
		authed.Timeout = timeout
		httpClient = authed
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
	}
}

// ListOffices lists the offices.
func (c *Client) ListOffices(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	if err := c.get(ctx, "/api/offices", nil, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

// ListCurrencies lists the currencies enabled in the accounting system.
func (c *Client) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var currencies []domain.Currency
	if err := c.get(ctx, "/api/currencies", nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// ListPaymentTypes lists the payment types.
func (c *Client) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	var paymentTypes []domain.PaymentType
	if err := c.get(ctx, "/api/paymenttypes", nil, &paymentTypes); err != nil {
		return nil, err
	}
	return paymentTypes, nil
}

// ListGLAccounts lists the general-ledger accounts that accept manual entries.
func (c *Client) ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error) {
	var accounts []domain.GLAccount
	query := url.Values{"manualEntriesAllowed": {"true"}}
	if err := c.get(ctx, "/api/glaccounts", query, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateJournalEntry posts a journal entry.
func (c *Client) CreateJournalEntry(ctx context.Context, entry domain.JournalEntrySubmission) (*domain.JournalEntryResult, error) {
	var result domain.JournalEntryResult
	if err := c.do(ctx, http.MethodPost, "/api/journal-entries", nil, entry, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// reportRowWire is a report row as the accounting API serializes it.
type reportRowWire struct {
	Date           string          `json:"date"`
	Office         string          `json:"office"`
	DebitAccount   string          `json:"debitAccount"`
	CreditAccount  string          `json:"creditAccount"`
	DebitUSD       decimal.Decimal `json:"debitUSD"`
	CreditUSD      decimal.Decimal `json:"creditUSD"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	DebitUGX       decimal.Decimal `json:"debitUGX"`
	CreditUGX      decimal.Decimal `json:"creditUGX"`
}

// ListJournalEntryReport fetches report rows matching the filter.
func (c *Client) ListJournalEntryReport(ctx context.Context, filter domain.ReportFilter) ([]domain.JournalEntryReportRow, error) {
	query := url.Values{}
	if filter.FromDate != nil {
		query.Set("fromDate", filter.FromDate.UTC().Format(time.RFC3339))
	}
	if filter.ToDate != nil {
		query.Set("toDate", filter.ToDate.UTC().Format(time.RFC3339))
	}
	if filter.OfficeID != 0 {
		query.Set("office", strconv.FormatInt(filter.OfficeID, 10))
	}

	var wire []reportRowWire
	if err := c.get(ctx, "/api/journal-entries/report", query, &wire); err != nil {
		return nil, err
	}

	rows := make([]domain.JournalEntryReportRow, 0, len(wire))
	for _, w := range wire {
		date, err := parseReportDate(w.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid report date %q: %v", apperrors.ErrUpstream, w.Date, err)
		}
		rows = append(rows, domain.JournalEntryReportRow{
			Date:           date,
			Office:         w.Office,
			DebitAccount:   w.DebitAccount,
			CreditAccount:  w.CreditAccount,
			DebitUSD:       w.DebitUSD,
			CreditUSD:      w.CreditUSD,
			ConversionRate: w.ConversionRate,
			DebitUGX:       w.DebitUGX,
			CreditUGX:      w.CreditUGX,
		})
	}
	return rows, nil
}

func parseReportDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", apperrors.ErrUpstream, path, err)
	}
	return nil
}

// errorResponse is the accounting API's error body.
type errorResponse struct {
	Error            string `json:"error"`
	DefaultUserMsg   string `json:"defaultUserMessage"`
	DeveloperMessage string `json:"developerMessage"`
}

func parseError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := strings.TrimSpace(string(raw))
	var body errorResponse
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.DefaultUserMsg != "":
			msg = body.DefaultUserMsg
		case body.Error != "":
			msg = body.Error
		case body.DeveloperMessage != "":
			msg = body.DeveloperMessage
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s: %s", apperrors.ErrNotFound, method, path, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	default:
		return fmt.Errorf("%w: %s %s returned %d: %s", apperrors.ErrUpstream, method, path, resp.StatusCode, msg)
	}
}
