package geth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Web3ClientVersion returns the node client version string.
func (c *Client) Web3ClientVersion(ctx context.Context) (Result, error) {
	return c.Call(ctx, Web3ClientVersion)
}

// Web3Sha3 returns the Keccak-256 of data, computed by the node.
func (c *Client) Web3Sha3(ctx context.Context, data hexutil.Bytes) (Result, error) {
	return c.Call(ctx, Web3Sha3, data)
}

// NetVersion returns the network id.
func (c *Client) NetVersion(ctx context.Context) (Result, error) {
	return c.Call(ctx, NetVersion)
}

// NetListening reports whether the node listens for peers.
func (c *Client) NetListening(ctx context.Context) (Result, error) {
	return c.Call(ctx, NetListening)
}

// NetPeerCount returns the number of connected peers.
func (c *Client) NetPeerCount(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, NetPeerCount)
}
