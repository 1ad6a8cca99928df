package geth

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ErrNoResult is returned when decoding a Result the node did not send.
var ErrNoResult = errors.New("no result")

// Result is the result member of a response, kept as received.
// A nil Result means the node sent neither a result nor an error.
type Result json.RawMessage

// Present reports whether the node sent a result member, null included.
func (r Result) Present() bool {
	return r != nil
}

// IsNull reports whether the node sent a null result.
func (r Result) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(r), []byte("null"))
}

// Decode unmarshals the result into v.
func (r Result) Decode(v any) error {
	if !r.Present() {
		return ErrNoResult
	}
	return json.Unmarshal(r, v)
}

// Value decodes the result into its generic form: map[string]any for
// objects, []any for arrays and json.Number for numbers. It returns nil for
// a missing result.
func (r Result) Value() (any, error) {
	if !r.Present() {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(r))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Present() {
		return []byte("null"), nil
	}
	return r, nil
}

func (r Result) String() string {
	if !r.Present() {
		return "<no result>"
	}
	return string(r)
}

// SyncStatus is the post-processed answer of eth_syncing.
type SyncStatus struct {
	// Syncing is true when the node reported sync progress, or answered
	// with a truthy scalar
	Syncing bool `json:"syncing"`
	// Progress holds every reported field decoded as an integer, nil unless
	// the node answered with an object
	Progress map[string]*big.Int `json:"progress,omitempty"`
	// Raw is the result as sent by the node
	Raw Result `json:"raw"`
}

// Uint64 returns the progress field name, 0 when absent or too large.
func (s *SyncStatus) Uint64(name string) uint64 {
	v, ok := s.Progress[name]
	if !ok || !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}

// decodeQuantity decodes a scalar hex quantity. A missing or null result
// yields nil.
func decodeQuantity(r Result) (*big.Int, error) {
	if !r.Present() || r.IsNull() {
		return nil, nil
	}
	return parseQuantity(json.RawMessage(r))
}

// decodeQuantityFields decodes every member of an object result. Non-object
// results are kept unchanged in Raw.
func decodeQuantityFields(r Result) (*SyncStatus, error) {
	status := &SyncStatus{Raw: r}
	trimmed := bytes.TrimSpace(r)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		status.Syncing = truthy(trimmed)
		return status, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	status.Syncing = true
	status.Progress = make(map[string]*big.Int, len(fields))
	for k, v := range fields {
		n, err := parseQuantity(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", k)
		}
		status.Progress[k] = n
	}
	return status, nil
}

// truthy reports whether a non-object result reads as true: true, a non-zero
// number, a string other than "" and "0", a non-empty array.
func truthy(raw []byte) bool {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != "" && v != "0"
	case []any:
		return len(v) > 0
	default:
		return false
	}
}

func parseQuantity(raw json.RawMessage) (*big.Int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// some nodes answer with plain JSON numbers
		if n, ok := new(big.Int).SetString(string(bytes.TrimSpace(raw)), 10); ok {
			return n, nil
		}
		return nil, errors.Errorf("invalid quantity %s", raw)
	}
	n, err := hexutil.DecodeBig(s)
	if err == hexutil.ErrEmptyNumber {
		return new(big.Int), nil
	}
	if err == hexutil.ErrLeadingZero || err == hexutil.ErrBig256Range {
		if n, ok := new(big.Int).SetString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), 16); ok {
			return n, nil
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid quantity %q", s)
	}
	return n, nil
}

// encodeQuantity is the inverse of parseQuantity for ids handed back to the
// node.
func encodeQuantity(n *big.Int) string {
	if n == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(n)
}
