package geth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebamiro/geth"
)

func TestTargets(t *testing.T) {
	for name, tc := range map[string]struct {
		target geth.Target
		want   geth.Options
	}{
		"nil": {
			target: nil,
			want:   geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 8545},
		},
		"port": {
			target: geth.Port(8546),
			want:   geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 8546},
		},
		"options port": {
			target: geth.Options{Port: 8546},
			want:   geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 8546},
		},
		"host and port": {
			target: geth.HostPort("10.0.0.5:9000"),
			want:   geth.Options{Version: "2.0", Host: "10.0.0.5", Port: 9000},
		},
		"options host and port": {
			target: geth.Options{Host: "10.0.0.5", Port: 9000},
			want:   geth.Options{Version: "2.0", Host: "10.0.0.5", Port: 9000},
		},
		"host": {
			target: geth.HostPort("node.local"),
			want:   geth.Options{Version: "2.0", Host: "node.local", Port: 8545},
		},
		"bad port": {
			target: geth.HostPort("node.local:http"),
			want:   geth.Options{Version: "2.0", Host: "node.local", Port: 8545},
		},
		"only port": {
			target: geth.HostPort(":9000"),
			want:   geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 9000},
		},
		"negative port": {
			target: geth.Port(-1),
			want:   geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 8545},
		},
		"full options": {
			target: geth.Options{Version: "1.0", Host: "geth", Port: 1, Timeout: time.Second},
			want:   geth.Options{Version: "1.0", Host: "geth", Port: 1, Timeout: time.Second},
		},
	} {
		t.Run(name, func(t *testing.T) {
			c := geth.New(tc.target)
			assert.Equal(t, tc.want, c.Options())
			assert.Equal(t, tc.want.Address(), c.Address())
		})
	}
}

func TestPortEquivalence(t *testing.T) {
	assert.Equal(t, geth.New(geth.Options{Port: 8546}).Options(), geth.New(geth.Port(8546)).Options())
	assert.Equal(t,
		geth.New(geth.Options{Host: "10.0.0.5", Port: 9000}).Options(),
		geth.New(geth.HostPort("10.0.0.5:9000")).Options(),
	)
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8545", geth.New(nil).Address())
	assert.Equal(t, "http://10.0.0.5:9000", geth.New(geth.HostPort("10.0.0.5:9000")).Address())
}

func TestConfigureReplacesWholesale(t *testing.T) {
	c := geth.New(geth.Options{Host: "10.0.0.5", Port: 9000, Version: "1.0"})
	c.Configure(geth.Port(8546))
	assert.Equal(t, geth.Options{Version: "2.0", Host: "127.0.0.1", Port: 8546}, c.Options())
	assert.Equal(t, "http://127.0.0.1:8546", c.Address())
}
