package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/geth"
	"github.com/sebamiro/geth/flags"
)

func resetViper(t *testing.T) {
	viper.Reset()
	viper.Set(flags.Log_Level, "none")
	t.Cleanup(viper.Reset)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

// node answers every request with result and hands the params it received
// to seen.
func node(t *testing.T, result string, seen chan<- []any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Params []any  `json:"params"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if seen != nil {
			seen <- req.Params
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestParseParams(t *testing.T) {
	params := parseParams([]string{
		"0x407d73d8a49eeb85d32cf465507dd71d507100c1",
		"latest",
		"false",
		"100",
		`{"to":"0x01"}`,
		`"quoted"`,
		"{broken",
	})
	assert.Equal(t, []any{
		"0x407d73d8a49eeb85d32cf465507dd71d507100c1",
		"latest",
		false,
		json.Number("100"),
		map[string]any{"to": "0x01"},
		"quoted",
		"{broken",
	}, params)
	assert.Empty(t, parseParams(nil))
}

func TestTargetFromConfig(t *testing.T) {
	resetViper(t)
	viper.Set(flags.RPC_Host, "10.0.0.5")
	viper.Set(flags.RPC_Port, 9000)
	viper.Set(flags.RPC_Timeout, "3s")
	assert.Equal(t, geth.Options{Host: "10.0.0.5", Port: 9000, Timeout: 3 * time.Second}, targetFromConfig())

	viper.Set(flags.RPC_Endpoint, "node.local:8546")
	target := targetFromConfig()
	assert.Equal(t, "node.local", target.Host)
	assert.Equal(t, 8546, target.Port)
}

func TestNewClientTransport(t *testing.T) {
	resetViper(t)
	viper.Set(flags.RPC_Transport, "carrier-pigeon")
	_, err := newClient()
	assert.ErrorContains(t, err, "carrier-pigeon")

	for _, transport := range []string{"", transportHTTP, transportFastHTTP} {
		viper.Set(flags.RPC_Transport, transport)
		client, err := newClient()
		require.NoError(t, err, transport)
		assert.Equal(t, "http://127.0.0.1:8545", client.Address())
	}
}

func TestCallCommand(t *testing.T) {
	resetViper(t)
	seen := make(chan []any, 1)
	viper.Set(flags.RPC_Endpoint, node(t, `"0xde0b6b3a7640000"`, seen))

	out, err := execute(t, "call", geth.EthGetBalance, "0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000\n", out)
	assert.Equal(t, []any{"0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest"}, <-seen)
}

func TestCallCommandFastHTTP(t *testing.T) {
	resetViper(t)
	viper.Set(flags.RPC_Endpoint, node(t, `{"number":"0x1b4"}`, nil))
	viper.Set(flags.RPC_Transport, transportFastHTTP)

	out, err := execute(t, "call", geth.EthGetBlockByNumber, "0x1b4", "false")
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"0x1b4"}`, out)
}

func TestCallCommandSyncing(t *testing.T) {
	resetViper(t)
	viper.Set(flags.RPC_Endpoint, node(t, `{"currentBlock":"0x8","highestBlock":"0x64"}`, nil))

	out, err := execute(t, "call", geth.EthSyncing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"syncing":true,"progress":{"currentBlock":8,"highestBlock":100},"raw":{"currentBlock":"0x8","highestBlock":"0x64"}}`, out)
}

func TestCallCommandRequiresMethod(t *testing.T) {
	resetViper(t)
	_, err := execute(t, "call")
	assert.Error(t, err)
}

func TestMethodsCommand(t *testing.T) {
	resetViper(t)
	out, err := execute(t, "methods")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(geth.Methods()))
	for _, line := range lines {
		if strings.HasPrefix(line, geth.EthSyncing+" ") {
			assert.True(t, strings.HasSuffix(line, "quantity-fields"), line)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	resetViper(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: ")
	assert.Contains(t, out, "Go Version: ")
}
