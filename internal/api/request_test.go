package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

func TestNewRequest_Headers(t *testing.T) {
	client := newTestClient(t, "https://example.com/v2", WithUserAgent("bot/2"))

	d, err := client.NewRequest(http.MethodGet, "/wallets/abc", nil, nil)
	require.NoError(t, err)

	h := d.Header()
	assert.Equal(t, "Bearer test-key", h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Accept"))
	assert.Equal(t, "bot/2", h.Get("User-Agent"))
	assert.Equal(t, d.RequestID(), h.Get(HeaderRequestID))
	assert.Empty(t, h.Get("Content-Type"))
	assert.Nil(t, d.Body())
	assert.Equal(t, "https://example.com/v2/wallets/abc", d.URL())
	assert.Equal(t, "/v2/wallets/abc", d.Path())
	assert.Equal(t, http.MethodGet, d.Method())
}

func TestNewRequest_QueryIsSortedAndSkipsEmpty(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	query := url.Values{}
	query.Set("offset", "20")
	query.Set("limit", "10")
	query.Set("sort", "")
	query.Add("attributes", `[{"traitType":"hat","value":"red cap"}]`)

	d, err := client.NewRequest(http.MethodGet, "collections/foo/listings", query, nil)
	require.NoError(t, err)

	u, err := url.Parse(d.URL())
	require.NoError(t, err)
	assert.Equal(t, "/collections/foo/listings", u.Path)
	assert.Equal(t, "10", u.Query().Get("limit"))
	assert.Equal(t, `[{"traitType":"hat","value":"red cap"}]`, u.Query().Get("attributes"))
	assert.NotContains(t, u.RawQuery, "sort")
	assert.Less(t, strings.Index(u.RawQuery, "limit"), strings.Index(u.RawQuery, "offset"))
}

func TestNewRequest_QueryAppendsToExistingQuery(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	d, err := client.NewRequest(http.MethodGet, "/search?q=x", url.Values{"limit": {"1"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/search?q=x&limit=1", d.URL())
}

func TestNewRequest_Body(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	d, err := client.NewRequest(http.MethodPost, "/pools", nil, map[string]int{"spotPrice": 3})
	require.NoError(t, err)
	assert.Equal(t, "application/json", d.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"spotPrice":3}`, string(d.Body()))

	// Callers get copies.
	d.Body()[0] = 'x'
	d.Header().Set("Authorization", "nope")
	assert.JSONEq(t, `{"spotPrice":3}`, string(d.Body()))
	assert.Equal(t, "Bearer test-key", d.Header().Get("Authorization"))
}

func TestNewRequest_EmptyPath(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	_, err := client.NewRequest(http.MethodGet, "  ", nil, nil)
	var argErr *apierrors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "path", argErr.Field)
}

func TestNewRequest_UniqueRequestIDs(t *testing.T) {
	client := newTestClient(t, "https://example.com")

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		d, err := client.NewRequest(http.MethodGet, "/x", nil, nil)
		require.NoError(t, err)
		_, dup := seen[d.RequestID()]
		require.False(t, dup)
		seen[d.RequestID()] = struct{}{}
	}
}
