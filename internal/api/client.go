package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultBaseURL   = "https://api-mainnet.magiceden.dev/v2"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "magiceden-go/0.1"
)

const tracerName = "github.com/magiceden-go/client-go/internal/api"

// Config configures the API client. Zero values take the package defaults.
type Config struct {
	// BaseURL is the API root every request path is appended to.
	BaseURL string
	// APIKey is sent as a bearer token on every request.
	APIKey string
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// HTTPClient is used by the default transport. Ignored when Transport is set.
	HTTPClient *http.Client
	// Transport performs round trips. Defaults to an HTTPTransport.
	Transport Transport
	// Timeout applies to the default HTTP client only.
	Timeout time.Duration
	// Backoff governs retries of rate-limited requests.
	Backoff BackoffPolicy
	// Logger receives diagnostics. The zero value logs nothing.
	Logger zerolog.Logger
	// TracerProvider creates the request spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(u string) Option {
	return func(c *Config) {
		c.BaseURL = u
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTransport replaces the transport.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithBackoff sets the retry backoff policy.
func WithBackoff(p BackoffPolicy) Option {
	return func(c *Config) {
		c.Backoff = p
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// Client is the HTTP API client. It is immutable after construction and safe
// for concurrent use.
type Client struct {
	cfg        Config
	baseURL    string
	apiKey     string
	userAgent  string
	transport  Transport
	backoff    BackoffPolicy
	classifier Classifier
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewClient creates a new API client from an explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, apierrors.ErrMissingBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	policy := cfg.Backoff
	if policy == (BackoffPolicy{}) {
		policy = DefaultBackoffPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		hc := cfg.HTTPClient
		if hc == nil {
			hc = &http.Client{Timeout: timeout}
		}
		transport = NewHTTPTransport(hc)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		cfg:        cfg,
		baseURL:    base,
		apiKey:     cfg.APIKey,
		userAgent:  userAgent,
		transport:  transport,
		backoff:    policy,
		classifier: Classifier{Logger: cfg.Logger},
		logger:     cfg.Logger,
		tracer:     tp.Tracer(tracerName),
	}, nil
}

// New creates a new API client with the default base URL, adjusted by opts.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// With returns a new client with opts applied on top of this client's
// configuration. The receiver is left unchanged.
func (c *Client) With(opts ...Option) (*Client, error) {
	cfg := c.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Backoff returns the retry policy.
func (c *Client) Backoff() BackoffPolicy {
	return c.backoff
}

// Do builds a fresh request for method and path on every attempt and runs it
// through the retry loop, decoding a successful response into result.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	return c.Execute(ctx, func() (*Descriptor, error) {
		return c.NewRequest(method, path, query, body)
	}, result)
}

// send performs one round trip and wraps failures in a TransportError.
func (c *Client) send(ctx context.Context, d *Descriptor, attempt int) (*RawResponse, error) {
	resp, err := c.transport.Send(ctx, d)
	if err != nil {
		var te *apierrors.TransportError
		if errors.As(err, &te) {
			return nil, err
		}
		return nil, &apierrors.TransportError{
			Method:  d.Method(),
			URL:     d.URL(),
			Attempt: attempt,
			Err:     err,
		}
	}
	if resp.RequestID == "" {
		resp.RequestID = d.RequestID()
	}
	return resp, nil
}
