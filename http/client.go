// Package http provides a Figma REST API client implementing
// figdoc.FileService and figdoc.UserService.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/figdoc"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Figma REST API root.
const DefaultBaseURL = "https://api.figma.com/v1"

// TokenHeader carries the personal access token.
const TokenHeader = "X-Figma-Token"

// Defaults for Client options.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
)

// maxErrorBody bounds how much of an error response is read into the error
// message.
const maxErrorBody = 4 << 10

var (
	_ figdoc.FileService = (*Client)(nil)
	_ figdoc.UserService = (*Client)(nil)
)

// Client talks to the Figma REST API. Transient failures (connection
// errors, 429 and 5xx) are retried with exponential backoff, honouring
// Retry-After. Requests, including retries, are rate limited client-side.
type Client struct {
	baseURL      string
	token        string
	timeout      time.Duration
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	rps          float64
	logger       *slog.Logger
	transport    http.RoundTripper

	client *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryWait sets the backoff bounds between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.retryWaitMin = minWait
		c.retryWaitMax = maxWait
	}
}

// WithRequestsPerSecond limits the request rate. Zero or less disables the
// limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		c.rps = rps
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTransport sets the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// NewClient returns a Client authenticating with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		token:        token,
		timeout:      DefaultTimeout,
		maxRetries:   DefaultMaxRetries,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
	}
	for _, opt := range opts {
		opt(c)
	}

	transport := c.transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if c.rps > 0 {
		transport = &limitedTransport{
			limiter: rate.NewLimiter(rate.Limit(c.rps), 1),
			next:    transport,
		}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: c.timeout, Transport: transport}
	rc.RetryMax = c.maxRetries
	rc.RetryWaitMin = c.retryWaitMin
	rc.RetryWaitMax = c.retryWaitMax
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	if c.logger != nil {
		rc.Logger = c.logger
	}
	c.client = rc

	return c
}

// FetchFile implements figdoc.FileService.
func (c *Client) FetchFile(ctx context.Context, fileKey string, opts figdoc.FetchOptions) ([]byte, error) {
	q := url.Values{}
	q.Set("branch_data", "false")
	if opts.Depth != nil {
		q.Set("depth", strconv.Itoa(*opts.Depth))
	}
	return c.get(ctx, "/files/"+url.PathEscape(fileKey), q)
}

// FetchNodes implements figdoc.FileService.
func (c *Client) FetchNodes(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) ([]byte, error) {
	if len(ids) == 0 {
		return nil, figdoc.Errorf(figdoc.EINVALID, "no node ids specified")
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	if opts.Depth != nil {
		q.Set("depth", strconv.Itoa(*opts.Depth))
	}
	return c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/nodes", q)
}

// Me implements figdoc.UserService.
func (c *Client) Me(ctx context.Context) (*figdoc.User, error) {
	body, err := c.get(ctx, "/me", nil)
	if err != nil {
		return nil, err
	}
	var u figdoc.User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}
	return &u, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, figdoc.Errorf(figdoc.EUNAUTHORIZED, "no access token configured; run 'figdoc auth login' or set FIGMA_TOKEN")
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// errorFromResponse maps a non-200 API response to an application error.
func errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return figdoc.Errorf(figdoc.EUNAUTHORIZED, "invalid or expired token")
	case http.StatusForbidden:
		return figdoc.Errorf(figdoc.EUNAUTHORIZED, "access denied; check file permissions")
	case http.StatusNotFound:
		return figdoc.Errorf(figdoc.ENOTFOUND, "file not found")
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter == "" {
			retryAfter = "60"
		}
		return figdoc.Errorf(figdoc.ERATELIMIT, "rate limit exceeded; retry after %ss", retryAfter)
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	body := strings.TrimSpace(string(b))
	if resp.StatusCode == http.StatusBadRequest && strings.Contains(body, "Request too large") {
		return figdoc.Errorf(figdoc.EINVALID, "request too large; use --depth to limit response size (try --depth 3 or lower)")
	}
	return figdoc.Errorf(figdoc.EINTERNAL, "API error (%d): %s", resp.StatusCode, body)
}

// limitedTransport waits on a token bucket before every round trip, so
// retries are limited as well as first attempts.
type limitedTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}
