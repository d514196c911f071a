package battlenet

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"wowsync/core/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBody = 256

// Client issues authenticated requests against the game-data API.
// A Client is safe for concurrent use; its token cache is private to the instance.
type Client struct {
	cfg     Config
	http    *resty.Client
	limiter *rate.Limiter
	logger  *zap.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(limit time.Duration) time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// WithClock replaces the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithSleep replaces the backoff sleep.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

// WithJitter replaces the jitter source. It receives the exclusive upper bound.
func WithJitter(jitter func(limit time.Duration) time.Duration) Option {
	return func(c *Client) {
		c.jitter = jitter
	}
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Locale == "" {
		cfg.Locale = "en_US"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		cfg:     cfg,
		http:    resty.New(),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
		now:     time.Now,
		sleep:   sleepContext,
		jitter:  uniformJitter,
	}
	for _, opt := range opts {
		opt(c)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	// Retries are handled by Request so every attempt is classified.
	c.http.SetTimeout(time.Duration(timeout) * time.Second).SetRetryCount(0)
	// resty writes its warnings to stderr unless given a logger
	c.http.SetLogger(c.logger.Named("resty").Sugar())

	return c, nil
}

// Region returns the configured region.
func (c *Client) Region() string {
	return c.cfg.Region
}

// Namespace returns the regional namespace of the given kind (static, dynamic, profile).
func (c *Client) Namespace(kind string) string {
	return kind + "-" + c.cfg.Region
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken returns the cached token, fetching a new one once it expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	endpoint := c.cfg.TokenEndpoint()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(endpoint)
	if err != nil {
		return "", &Error{Kind: KindFatal, Endpoint: endpoint, Err: fmt.Errorf("error obtaining access token: %w", err)}
	}
	if !resp.IsSuccess() {
		return "", &Error{Kind: KindFatal, Endpoint: endpoint, Status: resp.StatusCode(), Body: truncate(resp.String())}
	}

	var token tokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return "", &Error{Kind: KindFatal, Endpoint: endpoint, Err: fmt.Errorf("failed to decode token: %w", err)}
	}
	if token.AccessToken == "" {
		return "", &Error{Kind: KindFatal, Endpoint: endpoint, Err: fmt.Errorf("empty access token")}
	}

	c.token = token.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(token.ExpiresIn)*time.Second - c.cfg.TokenMargin)
	c.logger.Debug("Access token refreshed", zap.Time("expires", c.tokenExpiry))

	return c.token, nil
}

// RequestRaw performs an authenticated GET and returns the response body.
// The endpoint is lowercased; namespace and locale are added to params.
func (c *Client) RequestRaw(ctx context.Context, endpoint, namespace string, params url.Values) ([]byte, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint = strings.ToLower(endpoint)
	query := url.Values{}
	for k, v := range params {
		query[k] = slices.Clone(v)
	}
	query.Set("namespace", namespace)
	if query.Get("locale") == "" {
		query.Set("locale", c.cfg.Locale)
	}

	var lastErr *Error
	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindFatal, Endpoint: endpoint, Err: err}
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParamsFromValues(query).
			Get(c.cfg.BaseURL() + endpoint)
		if err != nil {
			metrics.RecordAPIRequest(0)
			return nil, &Error{Kind: KindFatal, Endpoint: endpoint, Err: err}
		}

		status := resp.StatusCode()
		metrics.RecordAPIRequest(status)
		if resp.IsSuccess() {
			return resp.Body(), nil
		}

		switch {
		case slices.Contains(c.cfg.NotFoundCodes, status):
			return nil, &Error{Kind: KindNotFound, Endpoint: endpoint, Status: status}
		case slices.Contains(c.cfg.TransientCodes, status):
			lastErr = &Error{Kind: KindTransient, Endpoint: endpoint, Status: status, Body: truncate(resp.String())}
			if attempt == c.cfg.MaxAttempts-1 {
				c.logger.Error("Final attempt failed",
					zap.String("endpoint", endpoint),
					zap.Int("status", status),
					zap.Int("attempts", c.cfg.MaxAttempts),
				)
				continue
			}

			wait := c.backoff(attempt)
			c.logger.Warn("Transient status, retrying",
				zap.String("endpoint", endpoint),
				zap.Int("status", status),
				zap.Duration("wait", wait),
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", c.cfg.MaxAttempts),
			)
			metrics.RecordAPIRetry()
			if err := c.sleep(ctx, wait); err != nil {
				return nil, &Error{Kind: KindFatal, Endpoint: endpoint, Err: err}
			}
		default:
			return nil, &Error{Kind: KindFatal, Endpoint: endpoint, Status: status, Body: truncate(resp.String())}
		}
	}

	return nil, &Error{
		Kind:     KindFatal,
		Endpoint: endpoint,
		Err:      fmt.Errorf("retries exhausted after %d attempts: %w", c.cfg.MaxAttempts, lastErr),
	}
}

// Request performs RequestRaw and decodes the JSON body into out.
func (c *Client) Request(ctx context.Context, endpoint, namespace string, params url.Values, out any) error {
	body, err := c.RequestRaw(ctx, endpoint, namespace, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindFatal, Endpoint: strings.ToLower(endpoint), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// backoff returns base*2^attempt plus jitter in [0, wait/10).
func (c *Client) backoff(attempt int) time.Duration {
	wait := c.cfg.BaseBackoff << attempt
	return wait + c.jitter(wait/10)
}

func uniformJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(limit)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
