package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Client implements remote calls to a JSON-RPC http server.
// The zero value is ready to use once URL is set. A Client must not be
// copied after its first call.
type Client struct {
	HTTP    HTTP
	URL     string
	Version string

	id atomic.Uint64
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) version() string {
	if c.Version == "" {
		return Version
	}
	return c.Version
}

// LatestID returns the id used by the most recent call, 0 before any call.
func (c *Client) LatestID() uint64 {
	return c.id.Load()
}

// Call sends method with the given positional params and returns the decoded
// response. A node-side error is returned as *Error, failures to reach the
// node as *TransportError.
func (c *Client) Call(ctx context.Context, method string, params ...any) (*Response, error) {
	if params == nil {
		params = []any{}
	}
	id := c.id.Add(1)
	b, err := json.Marshal(Request{Version: c.version(), Method: method, Params: params, ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "rpc, %s request marshaling", method)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(b))
	if err != nil {
		return nil, c.transportError(method, id, errors.Wrap(err, "rpc, request creation"))
	}
	req.ContentLength = int64(len(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(b)))

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, c.transportError(method, id, errors.Wrap(err, "rpc, request execution"))
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(method, id, errors.Wrap(err, "rpc, response reading"))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if !statusOK(resp.StatusCode) {
			return nil, c.transportError(method, id, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body})
		}
		// Unparsable bodies count as a call without result.
		return &Response{ID: id}, nil
	}
	if rpcErr := decodeError(env.Error); rpcErr != nil {
		rpcErr.ID = id
		return nil, rpcErr
	}
	if !statusOK(resp.StatusCode) {
		return nil, c.transportError(method, id, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body})
	}
	r := &Response{ID: id, Result: env.Result}
	if err := json.Unmarshal(env.Version, &r.Version); err != nil {
		r.Version = ""
	}
	return r, nil
}

func statusOK(status int) bool {
	return status >= 200 && status <= 299
}

func (c *Client) transportError(method string, id uint64, err error) error {
	return &TransportError{Method: method, URL: c.URL, ID: id, Err: err}
}
