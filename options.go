package geth

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Defaults applied to every field a Target leaves unset.
const (
	DefaultVersion = "2.0"
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 8545
)

// Options describes the endpoint a Client talks to.
type Options struct {
	// JSON-RPC protocol version sent in every request
	Version string
	Host    string
	Port    int
	// Timeout bounds every call, 0 leaves it to the transport
	Timeout time.Duration
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Version: DefaultVersion,
		Host:    DefaultHost,
		Port:    DefaultPort,
	}
}

// Address returns the http address of the endpoint.
func (o Options) Address() string {
	return "http://" + net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// Target selects the endpoint of a Client. It is one of Port, HostPort or
// Options; a nil Target selects the defaults.
type Target interface {
	options() Options
}

// Port overrides only the port.
type Port int

func (p Port) options() Options {
	o := DefaultOptions()
	if p > 0 {
		o.Port = int(p)
	}
	return o
}

// HostPort overrides the host, and the port when written as "host:port".
// A port that does not parse is ignored.
type HostPort string

func (hp HostPort) options() Options {
	o := DefaultOptions()
	s := strings.TrimSpace(string(hp))
	if s == "" {
		return o
	}
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		o.Host = strings.Trim(s, "[]")
		return o
	}
	if host != "" {
		o.Host = host
	}
	if p, err := strconv.Atoi(port); err == nil && p > 0 {
		o.Port = p
	}
	return o
}

// options merges the set fields of o onto the defaults.
func (o Options) options() Options {
	merged := DefaultOptions()
	if o.Version != "" {
		merged.Version = o.Version
	}
	if o.Host != "" {
		merged.Host = o.Host
	}
	if o.Port > 0 {
		merged.Port = o.Port
	}
	if o.Timeout > 0 {
		merged.Timeout = o.Timeout
	}
	return merged
}

// Resolve returns the options selected by target.
func Resolve(target Target) Options {
	if target == nil {
		return DefaultOptions()
	}
	return target.options()
}
