package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// RawResponse is the status and payload of one round trip.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// RequestID is the server's X-Request-ID echo, or the one we sent.
	RequestID string
}

// Transport performs exactly one network round trip for a descriptor.
// Implementations must not retry.
type Transport interface {
	Send(ctx context.Context, d *Descriptor) (*RawResponse, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, d *Descriptor) (*RawResponse, error)

// Send calls f(ctx, d).
func (f TransportFunc) Send(ctx context.Context, d *Descriptor) (*RawResponse, error) {
	return f(ctx, d)
}

// HTTPTransport sends descriptors with an *http.Client. Connection pooling is
// whatever the client's RoundTripper provides.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a transport backed by client, or by a new
// client with DefaultTimeout when client is nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, d *Descriptor) (*RawResponse, error) {
	var body io.Reader
	if len(d.body) > 0 {
		body = bytes.NewReader(d.body)
	}

	req, err := http.NewRequestWithContext(ctx, d.method, d.url, body)
	if err != nil {
		return nil, err
	}
	req.Header = d.Header()

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		RequestID:  resp.Header.Get(HeaderRequestID),
	}, nil
}
