package geth_test

import (
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/internal/rpc"
)

// newInmemoryNode serves handler on an in-memory listener and returns a
// client whose FastHTTP transport dials it.
func newInmemoryNode(t *testing.T, handler fasthttp.RequestHandler) *geth.Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go fasthttp.Serve(ln, handler) //nolint:errcheck
	t.Cleanup(func() { ln.Close() })

	transport := &geth.FastHTTP{Client: &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
	}}
	return geth.New(geth.Port(8545), geth.WithHTTPClient(transport))
}

func TestFastHTTP(t *testing.T) {
	client := newInmemoryNode(t, func(c *fasthttp.RequestCtx) {
		assert.Equal(t, "POST", string(c.Method()))
		assert.Equal(t, "application/json", string(c.Request.Header.ContentType()))
		assert.Equal(t, len(c.PostBody()), c.Request.Header.ContentLength())
		var req rpc.Request
		assert.NoError(t, json.Unmarshal(c.PostBody(), &req))
		assert.Equal(t, geth.EthBlockNumber, req.Method)
		c.SetContentType("application/json")
		fmt.Fprintf(c, `{"jsonrpc":"2.0","id":%d,"result":"0x2a"}`, req.ID)
	})

	n, err := client.EthBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Int64())
}

func TestFastHTTPStatus(t *testing.T) {
	client := newInmemoryNode(t, func(c *fasthttp.RequestCtx) {
		c.Error("unavailable", fasthttp.StatusServiceUnavailable)
	})

	_, err := client.EthBlockNumber(ctx)
	var statusErr *geth.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, fasthttp.StatusServiceUnavailable, statusErr.StatusCode)
	var transportErr *geth.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestFastHTTPDeadline(t *testing.T) {
	client := newInmemoryNode(t, func(c *fasthttp.RequestCtx) {
		time.Sleep(200 * time.Millisecond)
		c.SetBodyString(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`)
	})
	client.Configure(geth.Options{Timeout: 20 * time.Millisecond})

	_, err := client.EthBlockNumber(ctx)
	var transportErr *geth.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
