package magiceden

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/magiceden-go/client-go/internal/api"
)

const (
	// DefaultBaseURL is the mainnet v2 API root.
	DefaultBaseURL = api.DefaultBaseURL
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = api.DefaultTimeout
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = api.DefaultUserAgent
)

// BackoffPolicy configures retries of rate-limited requests.
type BackoffPolicy = api.BackoffPolicy

// DefaultBackoffPolicy returns a 500ms initial interval growing by 1.5x up
// to 60s per wait and 15 minutes in total.
func DefaultBackoffPolicy() BackoffPolicy {
	return api.DefaultBackoffPolicy()
}

// Transport performs exactly one HTTP round trip for a request descriptor.
type Transport = api.Transport

// TransportFunc adapts a function to the Transport interface.
type TransportFunc = api.TransportFunc

// Descriptor is an immutable description of one HTTP call.
type Descriptor = api.Descriptor

// RawResponse is the status and payload of one round trip.
type RawResponse = api.RawResponse

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	httpClient     *http.Client
	transport      Transport
	timeout        time.Duration
	userAgent      string
	backoff        BackoffPolicy
	logger         zerolog.Logger
	tracerProvider trace.TracerProvider
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTransport replaces the HTTP transport entirely, for example with a
// recording or fake implementation. WithHTTPClient and WithTimeout are
// ignored when a transport is set.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithBackoff sets the retry policy for rate-limited requests.
func WithBackoff(p BackoffPolicy) Option {
	return func(c *clientConfig) {
		c.backoff = p
	}
}

// WithLogger sets the logger. The client logs nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.tracerProvider = tp
	}
}

func (c *clientConfig) apiConfig(apiKey string) api.Config {
	return api.Config{
		BaseURL:        c.baseURL,
		APIKey:         apiKey,
		UserAgent:      c.userAgent,
		HTTPClient:     c.httpClient,
		Transport:      c.transport,
		Timeout:        c.timeout,
		Backoff:        c.backoff,
		Logger:         c.logger,
		TracerProvider: c.tracerProvider,
	}
}
