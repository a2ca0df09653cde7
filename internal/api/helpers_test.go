package api

import (
	"bytes"
	"context"
	"sync"
)

// syncBuffer is a bytes.Buffer safe for use as a log sink across goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// statusBody is one canned response.
type statusBody struct {
	status int
	body   string
}

// scriptedTransport replays responses in order, repeating the last one,
// and records every descriptor it receives.
type scriptedTransport struct {
	mu          sync.Mutex
	responses   []statusBody
	descriptors []*Descriptor
}

func (s *scriptedTransport) Send(_ context.Context, d *Descriptor) (*RawResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := len(s.descriptors)
	s.descriptors = append(s.descriptors, d)
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	r := s.responses[i]
	return &RawResponse{StatusCode: r.status, Body: []byte(r.body)}, nil
}

func (s *scriptedTransport) calls() []*Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Descriptor(nil), s.descriptors...)
}
