package geth_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/internal/rpc"
)

// stubNode answers every request with the reply returned by answer and
// records the requests it received.
type stubNode struct {
	*httptest.Server

	mu       sync.Mutex
	requests []rpc.Request
	answer   func(req rpc.Request) string
}

func newStubNode(t *testing.T, answer func(req rpc.Request) string) *stubNode {
	t.Helper()
	n := &stubNode{answer: answer}
	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, int64(len(body)), r.ContentLength)
		var req rpc.Request
		assert.NoError(t, json.Unmarshal(body, &req))
		n.mu.Lock()
		n.requests = append(n.requests, req)
		n.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, n.answer(req))
	}))
	t.Cleanup(n.Close)
	return n
}

// replying answers every request with the same reply.
func replying(reply string) func(rpc.Request) string {
	return func(rpc.Request) string { return reply }
}

// routing answers each method with its result, given as JSON, and any other
// method with a method not found error.
func routing(results map[string]string) func(rpc.Request) string {
	return func(req rpc.Request) string {
		result, ok := results[req.Method]
		if !ok {
			return fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"the method %s does not exist/is not available"}}`, req.ID, req.Method)
		}
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
	}
}

// Methods returns the methods received, in order.
func (n *stubNode) Methods() []string {
	var methods []string
	for _, req := range n.Requests() {
		methods = append(methods, req.Method)
	}
	return methods
}

func (n *stubNode) Requests() []rpc.Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]rpc.Request(nil), n.requests...)
}

func (n *stubNode) LastRequest(t *testing.T) rpc.Request {
	t.Helper()
	reqs := n.Requests()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

// Target points a client at the stub.
func (n *stubNode) Target(t *testing.T) geth.Options {
	t.Helper()
	u, err := url.Parse(n.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return geth.Options{Host: u.Hostname(), Port: port}
}

func (n *stubNode) NewClient(t *testing.T, opts ...geth.Option) *geth.Client {
	return geth.New(n.Target(t), opts...)
}
