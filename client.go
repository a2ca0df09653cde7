package magiceden

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/magiceden-go/client-go/internal/api"
	"github.com/magiceden-go/client-go/internal/params"
)

// Client is a Magic Eden API client. It is immutable and safe for
// concurrent use; use With to derive a differently configured client.
type Client struct {
	apiKey    string
	cfg       clientConfig
	apiClient *api.Client
}

// New creates a new client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		backoff: DefaultBackoffPolicy(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return newClient(apiKey, cfg)
}

func newClient(apiKey string, cfg clientConfig) (*Client, error) {
	apiClient, err := api.NewClient(cfg.apiConfig(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{
		apiKey:    apiKey,
		cfg:       cfg,
		apiClient: apiClient,
	}, nil
}

// With returns a new client with opts applied on top of c's configuration.
// c itself is not modified.
func (c *Client) With(opts ...Option) (*Client, error) {
	cfg := c.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return newClient(c.apiKey, cfg)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Backoff returns the retry policy in effect.
func (c *Client) Backoff() BackoffPolicy {
	return c.apiClient.Backoff()
}

// Do sends a request for an endpoint without a typed wrapper. path is
// relative to the base URL. A successful response is decoded into result,
// which may be nil. Rate-limited responses are retried like any other call.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	return c.apiClient.Do(ctx, method, path, query, body, result)
}

// get validates and encodes req as the query string of a GET to path.
// Invalid parameters fail before any request is sent.
func (c *Client) get(ctx context.Context, path string, req, result any) error {
	query, err := params.Encode(req)
	if err != nil {
		return err
	}
	return c.apiClient.Do(ctx, http.MethodGet, path, query, nil, result)
}

func (c *Client) instruction(ctx context.Context, path string, req any) (*InstructionResponse, error) {
	var out InstructionResponse
	if err := c.get(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Collections groups the /collections endpoints.
func (c *Client) Collections() *Collections {
	return &Collections{client: c}
}

// Marketplace groups the /marketplace endpoints.
func (c *Client) Marketplace() *Marketplace {
	return &Marketplace{client: c}
}

// Tokens groups the /tokens endpoints.
func (c *Client) Tokens() *Tokens {
	return &Tokens{client: c}
}

// Wallets groups the /wallets endpoints.
func (c *Client) Wallets() *Wallets {
	return &Wallets{client: c}
}

// MMM groups the Magic Eden AMM pool endpoints.
func (c *Client) MMM() *MMM {
	return &MMM{client: c}
}

// Instructions groups the endpoints returning unsigned marketplace
// transactions.
func (c *Client) Instructions() *Instructions {
	return &Instructions{client: c}
}
