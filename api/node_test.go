package api

import (
	"bytes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const testToken = "dXNlcjpwYXNz"

type seenRequest struct {
	Method      string
	URI         string
	Auth        string
	ContentType string
	Body        string
}

// fakeNode is an httptest server that records every request it receives.
type fakeNode struct {
	*httptest.Server

	mu   sync.Mutex
	seen []seenRequest
}

func newFakeNode(t *testing.T, handler http.HandlerFunc) *fakeNode {
	t.Helper()
	node := &fakeNode{}
	node.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		node.mu.Lock()
		node.seen = append(node.seen, seenRequest{
			Method:      r.Method,
			URI:         r.URL.RequestURI(),
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		node.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
	t.Cleanup(node.Close)
	return node
}

func (n *fakeNode) requests() []seenRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]seenRequest(nil), n.seen...)
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func newTestClient(t *testing.T, endpoints []string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.New(zerolog.NewTestWriter(t)))}, opts...)
	client, err := NewClient(testToken, endpoints, opts...)
	require.Nil(t, err)
	return client
}
