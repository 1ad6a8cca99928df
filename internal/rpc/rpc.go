package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Version is the JSON-RPC protocol version sent when none is configured.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

// Response is a decoded reply. Result stays nil when the node sent no result
// member and holds the literal "null" when it sent a null result. ID is the
// id of the request, whatever the node echoed.
type Response struct {
	Version string          `json:"jsonrpc"`
	ID      uint64          `json:"-"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// envelope holds the members of a reply undecoded, so a malformed id or
// version never hides the error member.
type envelope struct {
	Version json.RawMessage `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

// Error is the error object returned by the node. ID is the id of the
// request that failed.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	ID      uint64          `json:"-"`
}

// decodeError returns the error member of a reply, nil when absent or null.
// A member that is not an error object becomes an internal error carrying
// its text.
func decodeError(raw json.RawMessage) *Error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	e := &Error{}
	if raw[0] == '{' && json.Unmarshal(raw, e) == nil {
		return e
	}
	e = &Error{Code: CodeInternalError, Message: string(raw)}
	var msg string
	if json.Unmarshal(raw, &msg) == nil {
		e.Message = msg
	}
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError reports a call that never got an answer from the node.
type TransportError struct {
	Method string
	URL    string
	ID     uint64
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc transport, %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is the cause of a TransportError when the endpoint answered
// with a non-2xx status and no JSON-RPC error.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status %s", e.Status)
}
