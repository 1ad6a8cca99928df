package geth

import (
	"context"
	"math/big"
	"net/http"
	"sync"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/pkg/errors"

	"github.com/sebamiro/geth/internal/rpc"
)

type (
	// HTTP is the transport a Client sends requests through.
	// *http.Client satisfies it.
	HTTP = rpc.HTTP
	// Error is the error object returned by the node.
	Error = rpc.Error
	// TransportError reports a call that never got an answer from the node.
	TransportError = rpc.TransportError
	// StatusError is a non-2xx answer carrying no JSON-RPC error.
	StatusError = rpc.StatusError
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = rpc.CodeParseError
	CodeInvalidRequest = rpc.CodeInvalidRequest
	CodeMethodNotFound = rpc.CodeMethodNotFound
	CodeInvalidParams  = rpc.CodeInvalidParams
	CodeInternalError  = rpc.CodeInternalError
)

// Client calls the JSON-RPC methods of a geth node over HTTP.
// It is safe for concurrent use.
type Client struct {
	mu        sync.RWMutex
	options   Options
	rpc       rpc.Client
	transport func() HTTP
	logger    log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient makes the Client send every request through h.
func WithHTTPClient(h HTTP) Option {
	return func(c *Client) {
		c.transport = func() HTTP { return h }
	}
}

// WithTransport sets the factory called for a fresh transport on every
// Configure.
func WithTransport(factory func() HTTP) Option {
	return func(c *Client) {
		c.transport = factory
	}
}

// WithLogger sets the logger, calls are logged at debug level.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a Client for target, nil meaning http://127.0.0.1:8545.
//
// Example:
//
//	client := geth.New(geth.HostPort("10.0.0.5:9000"))
//	height, err := client.EthBlockNumber(ctx)
func New(target Target, opts ...Option) *Client {
	c := &Client{
		transport: func() HTTP { return &http.Client{} },
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Configure(target)
	return c
}

// Configure replaces the endpoint options, merged onto the defaults, and
// resets the transport. The request id keeps counting.
func (c *Client) Configure(target Target) {
	o := Resolve(target)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = o
	c.rpc.URL = o.Address()
	c.rpc.Version = o.Version
	c.rpc.HTTP = c.transport()
	c.logger.Debug("configured", "address", c.rpc.URL, "version", o.Version)
}

// Options returns the options in use.
func (c *Client) Options() Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options
}

// Address returns the http address requests are sent to.
func (c *Client) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rpc.URL
}

// LatestRequestID returns the id of the latest request, 0 before any call.
func (c *Client) LatestRequestID() uint64 {
	return c.rpc.LatestID()
}

// Call sends method with args as positional params and returns the result
// as received. A missing result is returned as a nil Result without error.
func (c *Client) Call(ctx context.Context, method string, args ...any) (Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}
	resp, err := c.rpc.Call(ctx, method, args...)
	if err != nil {
		var (
			rpcErr       *Error
			transportErr *TransportError
		)
		switch {
		case errors.As(err, &rpcErr):
			c.logger.Debug("rpc error", "method", method, "id", rpcErr.ID, "code", rpcErr.Code, "message", rpcErr.Message)
		case errors.As(err, &transportErr):
			c.logger.Error("rpc call failed", "method", method, "id", transportErr.ID, "address", c.rpc.URL, "err", err)
		default:
			c.logger.Error("rpc call failed", "method", method, "address", c.rpc.URL, "err", err)
		}
		return nil, err
	}
	c.logger.Debug("rpc call", "method", method, "id", resp.ID, "result", resp.Result != nil)
	return Result(resp.Result), nil
}

// CallResult executes a call, with args if any, and saves the result into
// the value passed as param.
func (c *Client) CallResult(ctx context.Context, method string, result any, args ...any) error {
	res, err := c.Call(ctx, method, args...)
	if err != nil {
		return err
	}
	if err := res.Decode(result); err != nil {
		return errors.Wrapf(err, "%s result", method)
	}
	return nil
}

func (c *Client) quantity(ctx context.Context, method string, args ...any) (*big.Int, error) {
	res, err := c.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	n, err := decodeQuantity(res)
	if err != nil {
		return nil, errors.Wrap(err, method)
	}
	return n, nil
}
