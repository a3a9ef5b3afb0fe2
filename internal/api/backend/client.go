// Package backend is the HTTP client for the Stockify analytics backend.
// The wire shapes are consumed as-is; this package only adds transport
// resilience around them.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/pattarak/stockify/models"
)

// Client is a rate-limited HTTP client for the analytics backend.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	logger     zerolog.Logger

	// retryBudget bounds how long a single call keeps retrying.
	retryBudget time.Duration
}

// New creates a client for the backend at baseURL with the given request
// timeout in seconds.
func New(baseURL string, timeoutSeconds int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		limiter:     rate.NewLimiter(rate.Every(time.Second), 5), // 5 requests per second
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      log.With().Str("component", "backend_client").Logger(),
		retryBudget: 30 * time.Second,
	}
}

// Analyze fetches the full market snapshot for a symbol.
func (c *Client) Analyze(ctx context.Context, symbol string) (*models.MarketSnapshot, error) {
	var snap models.MarketSnapshot
	path := "/analyze/" + url.PathEscape(symbol)
	if err := c.getJSON(ctx, path, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Backtest fetches the rule-based backtest stats for a symbol.
func (c *Client) Backtest(ctx context.Context, symbol string) (*models.BacktestResult, error) {
	var result models.BacktestResult
	path := "/backtest/" + url.PathEscape(symbol)
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	if result.Symbol == "" {
		result.Symbol = strings.ToUpper(symbol)
	}
	return &result, nil
}

// Discover fetches the opportunity scan, highest score first.
func (c *Client) Discover(ctx context.Context) ([]models.Opportunity, error) {
	var out []models.Opportunity
	if err := c.getJSON(ctx, "/discover", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Streaks fetches the consecutive-move gainers and losers.
func (c *Client) Streaks(ctx context.Context) (*models.StreakReport, error) {
	var report models.StreakReport
	if err := c.getJSON(ctx, "/streaks", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// getJSON runs a rate-limited GET with exponential-backoff retries and
// decodes the response body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	fullURL := c.baseURL + path
	c.logger.Debug().Str("url", fullURL).Msg("Fetching from backend")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	var resp *http.Response
	operation := func() error {
		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("non-200 status code: %d", resp.StatusCode)
		}
		return nil
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = c.retryBudget

	if err := backoff.Retry(operation, backoff.WithContext(backoffStrategy, ctx)); err != nil {
		return fmt.Errorf("after retries: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return fmt.Errorf("parsing JSON: %w", err)
	}

	return nil
}
