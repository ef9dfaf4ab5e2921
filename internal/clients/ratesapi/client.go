package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	portsprov "github.com/nmishr/currency_exchange/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// Client fetches spot rates from the external exchange-rates API.
// It performs a single call per request: no retries, no timeout beyond the
// transport default.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// latestResponse is the provider's /latest payload.
type latestResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewClient creates a new rates API client.
func NewClient(baseURL, accessKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// NewClientWithHTTPClient creates a new rates API client with a caller-supplied
// http.Client.
func NewClientWithHTTPClient(baseURL, accessKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// LatestRates fetches the provider's current rates map, keyed by currency code.
func (c *Client) LatestRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/latest?access_key=%s", c.baseURL, c.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Rates API call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Rates API returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("rates API returned status %d", resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode rates API response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	return payload.Rates, nil
}

var _ portsprov.RateProvider = (*Client)(nil)
