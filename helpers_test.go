package magiceden

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testBackoff = BackoffPolicy{
	InitialInterval: time.Millisecond,
	Multiplier:      2,
	MaxInterval:     5 * time.Millisecond,
	MaxElapsedTime:  time.Second,
}

// recordedRequest is what the fake API saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// fakeAPI serves a fixed response per path and records requests.
type fakeAPI struct {
	t      *testing.T
	mu     sync.Mutex
	routes map[string]fakeRoute
	seen   []recordedRequest
	server *httptest.Server
}

type fakeRoute struct {
	status int
	body   string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, routes: make(map[string]fakeRoute)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = fakeRoute{status: status, body: body}
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.seen = append(f.seen, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	route, ok := f.routes[r.URL.EscapedPath()]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"message":"not found"}}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_, _ = io.WriteString(w, route.body)
}

func (f *fakeAPI) requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.seen...)
}

func (f *fakeAPI) lastRequest() recordedRequest {
	f.t.Helper()
	reqs := f.requests()
	require.NotEmpty(f.t, reqs, "no request reached the server")
	return reqs[len(reqs)-1]
}

func (f *fakeAPI) client(opts ...Option) *Client {
	f.t.Helper()
	opts = append([]Option{WithBaseURL(f.server.URL + "/v2"), WithBackoff(testBackoff)}, opts...)
	client, err := New("test-key", opts...)
	require.NoError(f.t, err)
	return client
}

func intPtr(i int) *int { return &i }
