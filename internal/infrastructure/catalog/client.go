package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cartwise/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	userAgent        = "CartWise/1.0"
	maxErrorBodySize = 4096
	defaultPageSize  = 100
)

// Client handles communication with the remote product catalog category API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	maxRetries  int
	backoffBase time.Duration
	debug       bool
}

// Option customizes a Client
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit sets the client-side request rate and burst
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond > 0 && burst > 0 {
			c.rateLimiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
		}
	}
}

// WithMaxRetries sets how many attempts a listing request gets
func WithMaxRetries(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.maxRetries = attempts
		}
	}
}

// WithBackoffBase sets the delay before the first retry; later retries double it
func WithBackoffBase(base time.Duration) Option {
	return func(c *Client) {
		if base > 0 {
			c.backoffBase = base
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new catalog API client
func NewClient(apiKey, baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
		// The public catalog API allows 5 calls per second per key
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
		maxRetries:  3,
		backoffBase: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...any) {
	if c.debug {
		log.Printf("[CATALOG] "+format, args...)
	}
}

// backoffFrom returns the wait before retry number attempt (1-based),
// doubling from base
func backoffFrom(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(1<<(attempt-1))
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// isRetryable reports whether a status code is worth another attempt
func isRetryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}

// getWithRetry performs a rate limited GET and returns the body of a 200 response.
// 429 and 5xx responses and transport errors are retried with exponential backoff.
func (c *Client) getWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoffFrom(c.backoffBase, attempt-1)):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			c.debugLog("Request error (attempt %d): %v", attempt, err)
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: reading body: %v", domain.ErrCatalogAPIFailure, err)
			}
			return body, nil
		}

		body, _ := readLimitedBody(resp.Body, maxErrorBodySize)
		resp.Body.Close()
		c.debugLog("API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, domain.ErrCategoryNotFound
		case isRetryable(resp.StatusCode):
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
		default:
			return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogAPIFailure, resp.StatusCode, string(body))
		}
	}

	return nil, lastErr
}

// GetCategories fetches the first page of remote categories
func (c *Client) GetCategories(ctx context.Context, pageSize int) (*domain.CategoryPage, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("show", "id,name,active,path")
	params.Add("pageSize", strconv.Itoa(pageSize))
	params.Add("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s/v1/categories?%s", c.baseURL, params.Encode())
	c.debugLog("GetCategories pageSize=%d", pageSize)

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var page domain.CategoryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.debugLog("Fetched %d categories (total %d)", len(page.Categories), page.Total)
	return &page, nil
}

// GetCategoryByID fetches a single category. A lookup that matches nothing
// returns ErrCategoryNotFound.
func (c *Client) GetCategoryByID(ctx context.Context, id string) (*domain.RemoteCategory, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("show", "id,name,active,path")
	params.Add("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s/v1/categories(id=%s)?%s", c.baseURL, url.PathEscape(id), params.Encode())
	c.debugLog("GetCategoryByID id=%s", id)

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var page domain.CategoryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(page.Categories) == 0 {
		return nil, domain.ErrCategoryNotFound
	}

	category := page.Categories[0]
	return &category, nil
}
