package geth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func (c *Client) ShhVersion(ctx context.Context) (Result, error) {
	return c.Call(ctx, ShhVersion)
}

// ShhPost sends a whisper message.
func (c *Client) ShhPost(ctx context.Context, message any) (Result, error) {
	return c.Call(ctx, ShhPost, message)
}

func (c *Client) ShhNewIdentity(ctx context.Context) (Result, error) {
	return c.Call(ctx, ShhNewIdentity)
}

func (c *Client) ShhHasIdentity(ctx context.Context, identity hexutil.Bytes) (Result, error) {
	return c.Call(ctx, ShhHasIdentity, identity)
}

func (c *Client) ShhNewGroup(ctx context.Context) (Result, error) {
	return c.Call(ctx, ShhNewGroup)
}

func (c *Client) ShhAddToGroup(ctx context.Context, identity hexutil.Bytes) (Result, error) {
	return c.Call(ctx, ShhAddToGroup, identity)
}

// ShhNewFilter installs a whisper filter and returns its id.
func (c *Client) ShhNewFilter(ctx context.Context, options any) (*big.Int, error) {
	return c.quantity(ctx, ShhNewFilter, options)
}

func (c *Client) ShhUninstallFilter(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, ShhUninstallFilter, encodeQuantity(id))
}

func (c *Client) ShhGetFilterChanges(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, ShhGetFilterChanges, encodeQuantity(id))
}

func (c *Client) ShhGetMessages(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, ShhGetMessages, encodeQuantity(id))
}
