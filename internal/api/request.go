package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

// HeaderRequestID carries the per-attempt request identifier.
const HeaderRequestID = "X-Request-ID"

// Descriptor is an immutable description of one HTTP call. A descriptor
// belongs to a single attempt; retries build a new one.
type Descriptor struct {
	method    string
	url       string
	header    http.Header
	body      []byte
	requestID string
}

// RequestFunc builds a fresh descriptor for each attempt.
type RequestFunc func() (*Descriptor, error)

// Method returns the HTTP method.
func (d *Descriptor) Method() string { return d.method }

// URL returns the absolute request URL including the query string.
func (d *Descriptor) URL() string { return d.url }

// Header returns a copy of the request headers.
func (d *Descriptor) Header() http.Header { return d.header.Clone() }

// Body returns a copy of the JSON body, or nil.
func (d *Descriptor) Body() []byte { return bytes.Clone(d.body) }

// RequestID returns the X-Request-ID value generated for this descriptor.
func (d *Descriptor) RequestID() string { return d.requestID }

// Path returns the URL path without the query string.
func (d *Descriptor) Path() string {
	u, err := url.Parse(d.url)
	if err != nil {
		return d.url
	}
	return u.Path
}

// NewRequest builds a descriptor for path relative to the base URL. Query
// entries with empty values are omitted. A non-nil body is encoded as JSON.
// No I/O happens here; a malformed URL surfaces from the transport.
func (c *Client) NewRequest(method, path string, query url.Values, body any) (*Descriptor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &apierrors.InvalidArgumentError{Field: "path", Reason: "must not be empty"}
	}

	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return nil, &apierrors.InvalidArgumentError{Field: "body", Reason: fmt.Sprintf("failed to marshal request body: %v", err)}
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.baseURL + path
	if q := encodeQuery(query); q != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target += sep + q
	}

	requestID := uuid.NewString()
	header := make(http.Header, 5)
	header.Set("Authorization", "Bearer "+c.apiKey)
	header.Set("Accept", "application/json")
	header.Set("User-Agent", c.userAgent)
	header.Set(HeaderRequestID, requestID)
	if data != nil {
		header.Set("Content-Type", "application/json")
	}

	return &Descriptor{
		method:    method,
		url:       target,
		header:    header,
		body:      data,
		requestID: requestID,
	}, nil
}

func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	clean := make(url.Values, len(query))
	for k, vs := range query {
		for _, v := range vs {
			if v == "" {
				continue
			}
			clean.Add(k, v)
		}
	}
	return clean.Encode()
}
