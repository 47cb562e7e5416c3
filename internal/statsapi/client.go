// Package statsapi provides a typed client for the MLB Stats API.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://statsapi.mlb.com/api/v1"

// ClientConfig holds configuration for the Stats API client
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RetryWaitMin      time.Duration
	RetryWaitMax      time.Duration
	RateLimit         float64 // requests per second
	MetadataCacheTTL  time.Duration
	CircuitBreakerMax int // max consecutive failures before circuit break
}

// DefaultClientConfig returns recommended defaults
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:           defaultBaseURL,
		Timeout:           30 * time.Second,
		MaxRetries:        5,
		RetryWaitMin:      100 * time.Millisecond,
		RetryWaitMax:      10 * time.Second,
		RateLimit:         10.0,
		MetadataCacheTTL:  time.Hour,
		CircuitBreakerMax: 5,
	}
}

// Client wraps retryablehttp.Client with rate limiting, a circuit breaker
// and a small cache for metadata endpoints that rarely change (sports list).
type Client struct {
	client            *retryablehttp.Client
	baseURL           string
	limiter           *rate.Limiter
	metadata          *cache.Cache
	circuitBreakerMax int
	logger            *logrus.Entry

	// breaker state, shared by concurrent fetch workers
	mu                sync.Mutex
	consecutiveErrors int
	isOpen            bool
	lastError         error
}

// NewClient creates a new Stats API client
func NewClient(cfg ClientConfig, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = customRetryPolicy()
	retryClient.Logger = nil

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		client:            retryClient,
		baseURL:           baseURL,
		limiter:           rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		metadata:          cache.New(cfg.MetadataCacheTTL, 2*cfg.MetadataCacheTTL),
		circuitBreakerMax: cfg.CircuitBreakerMax,
		logger:            logger.WithField("component", "statsapi"),
	}
}

// get executes a rate-limited GET against an API path and decodes the JSON
// body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if open, lastErr := c.breakerState(); open {
		return fmt.Errorf("circuit breaker open: %v", lastErr)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.recordFailure(err)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 500 {
		c.recordSuccess()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}

func (c *Client) breakerState() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen, c.lastError
}

func (c *Client) recordFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveErrors++
	c.lastError = err
	if c.consecutiveErrors >= c.circuitBreakerMax && !c.isOpen {
		c.isOpen = true
		c.logger.WithError(err).Warnf("Circuit breaker opened after %d consecutive errors", c.consecutiveErrors)
	}
}

func (c *Client) recordSuccess() {
	c.mu.Lock()
	c.consecutiveErrors = 0
	c.isOpen = false
	c.mu.Unlock()
}

// Close closes any resources held by the client
func (c *Client) Close() error {
	c.client.HTTPClient.CloseIdleConnections()
	return nil
}

// customRetryPolicy defines which HTTP responses should trigger a retry
func customRetryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			// Retry on network errors
			return true, err
		}

		// Retry on rate limit (429) and server/gateway errors
		if resp.StatusCode == 429 || resp.StatusCode == 500 || resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504 {
			return true, nil
		}

		return false, nil
	}
}

// truncate returns a shortened body for error messages
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
