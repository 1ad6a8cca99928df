package geth_test

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/geth"
)

func TestGetAccount(t *testing.T) {
	node := newStubNode(t, routing(map[string]string{
		geth.EthGetBalance:          `"0xde0b6b3a7640000"`,
		geth.EthGetTransactionCount: `"0x5"`,
		geth.EthGetCode:             `"0x6001"`,
	}))

	a, err := node.NewClient(t).GetAccount(ctx, account, "")
	require.NoError(t, err)
	assert.Equal(t, account, a.Address)
	assert.Equal(t, "1000000000000000000", a.Balance.String())
	assert.Equal(t, uint64(5), a.Nonce)
	assert.Equal(t, hexutil.Bytes{0x60, 0x01}, a.Code)
	assert.Equal(t, geth.Latest, a.Block)
	assert.True(t, a.IsContract())

	assert.Equal(t, []string{geth.EthGetBalance, geth.EthGetTransactionCount, geth.EthGetCode}, node.Methods())
	for _, req := range node.Requests() {
		assert.Equal(t, []any{"0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest"}, req.Params, req.Method)
	}
}

func TestGetAccountAtBlock(t *testing.T) {
	node := newStubNode(t, routing(map[string]string{
		geth.EthGetBalance:          `"0x0"`,
		geth.EthGetTransactionCount: `"0x0"`,
		geth.EthGetCode:             `"0x"`,
	}))

	a, err := node.NewClient(t).GetAccount(ctx, account, geth.BlockNumberOf(16))
	require.NoError(t, err)
	assert.False(t, a.IsContract())
	assert.Equal(t, int64(0), a.Balance.Int64())
	assert.Equal(t, "0x10", node.LastRequest(t).Params[1])
}

func TestGetAccountNoResult(t *testing.T) {
	node := newStubNode(t, replying(`{"jsonrpc":"2.0","id":1}`))
	_, err := node.NewClient(t).GetAccount(ctx, account, geth.Latest)
	assert.ErrorIs(t, err, geth.ErrNoResult)
}

func TestGetAccountRPCError(t *testing.T) {
	node := newStubNode(t, routing(map[string]string{
		geth.EthGetBalance: `"0x1"`,
	}))
	_, err := node.NewClient(t).GetAccount(ctx, account, geth.Latest)
	var rpcErr *geth.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, geth.CodeMethodNotFound, rpcErr.Code)
}

func TestIncrementNonce(t *testing.T) {
	a := &geth.Account{Nonce: 1}
	n, err := a.IncrementNonce()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	a.Nonce = math.MaxUint64
	_, err = a.IncrementNonce()
	assert.Error(t, err)
	assert.Equal(t, uint64(math.MaxUint64), a.Nonce)
}

func TestTransactionFrom(t *testing.T) {
	a := &geth.Account{Address: account, Nonce: 9}
	args := a.TransactionFrom(nil).Args()
	require.NotNil(t, args.From)
	assert.Equal(t, account, *args.From)
	require.NotNil(t, args.Nonce)
	assert.Equal(t, hexutil.Uint64(9), *args.Nonce)
}
