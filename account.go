package geth

import (
	"context"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type Account struct {
	Address common.Address `json:"address"`
	Balance *big.Int       `json:"balance"` // wei
	Nonce   uint64         `json:"nonce"`
	Code    hexutil.Bytes  `json:"code,omitempty"`
	Block   BlockNumber    `json:"block"`
}

// IsContract reports whether code is deployed at the account.
func (a Account) IsContract() bool {
	return len(a.Code) > 0
}

// IncrementNonce increments the internal record of the account's nonce by 1.
// This is typically used after sending a transaction so that the next one
// built from this record carries the right nonce.
func (a *Account) IncrementNonce() (uint64, error) {
	if a.Nonce == math.MaxUint64 {
		return 0, errors.Errorf("nonce cannot be increased, it already reached MaxUint64 (%d)", uint64(math.MaxUint64))
	}
	a.Nonce++
	return a.Nonce, nil
}

// GetAccount returns balance, nonce and code of address at block.
func (c *Client) GetAccount(ctx context.Context, address common.Address, block BlockNumber) (*Account, error) {
	if block == "" {
		block = Latest
	}
	balance, err := c.EthGetBalance(ctx, address, block)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, errors.Wrap(ErrNoResult, EthGetBalance)
	}
	nonce, err := c.EthGetTransactionCount(ctx, address, block)
	if err != nil {
		return nil, err
	}
	if nonce == nil || !nonce.IsUint64() {
		return nil, errors.Wrapf(ErrNoResult, "%s for %s", EthGetTransactionCount, address)
	}
	res, err := c.EthGetCode(ctx, address, block)
	if err != nil {
		return nil, err
	}
	var code hexutil.Bytes
	if err := res.Decode(&code); err != nil {
		return nil, errors.Wrapf(err, "%s result", EthGetCode)
	}
	return &Account{
		Address: address,
		Balance: balance,
		Nonce:   nonce.Uint64(),
		Code:    code,
		Block:   block,
	}, nil
}

// TransactionFrom starts a Transaction from the account carrying its nonce.
func (a *Account) TransactionFrom(c *Client) *Transaction {
	return NewTransactionBuilder().
		Client(c).
		From(a.Address).
		Nonce(a.Nonce)
}
