package geth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// TxArgs is the transaction object taken by eth_sendTransaction, eth_call and
// eth_estimateGas. Unset fields are left for the node to fill.
type TxArgs struct {
	From                 *common.Address `json:"from,omitempty"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value,omitempty"`
	Nonce                *hexutil.Uint64 `json:"nonce,omitempty"`
	Data                 hexutil.Bytes   `json:"data,omitempty"`
}

type Transaction struct {
	client *Client
	build  TxArgs
}

// NewTransactionBuilder returns a Transaction builder that can prepare, call
// and send a transaction through a node.
//
// Example:
//
//	hash, err := geth.NewTransactionBuilder().
//		Client(client).
//		From(from).
//		To(to).
//		Value(big.NewInt(1e18)).
//		Send(ctx)
func NewTransactionBuilder() *Transaction {
	return &Transaction{}
}

func (t *Transaction) Client(c *Client) *Transaction {
	t.client = c
	return t
}

// From sets the sender, it must be unlocked on the node for Send.
func (t *Transaction) From(a common.Address) *Transaction {
	t.build.From = &a
	return t
}

// To sets the recipient, leave it unset to create a contract.
func (t *Transaction) To(a common.Address) *Transaction {
	t.build.To = &a
	return t
}

func (t *Transaction) Gas(g uint64) *Transaction {
	t.build.Gas = (*hexutil.Uint64)(&g)
	return t
}

func (t *Transaction) GasPrice(p *big.Int) *Transaction {
	t.build.GasPrice = (*hexutil.Big)(p)
	return t
}

// FeeCaps sets the EIP-1559 fee caps, replacing any gas price.
func (t *Transaction) FeeCaps(maxFee, maxPriorityFee *big.Int) *Transaction {
	t.build.GasPrice = nil
	t.build.MaxFeePerGas = (*hexutil.Big)(maxFee)
	t.build.MaxPriorityFeePerGas = (*hexutil.Big)(maxPriorityFee)
	return t
}

func (t *Transaction) Value(v *big.Int) *Transaction {
	t.build.Value = (*hexutil.Big)(v)
	return t
}

func (t *Transaction) Nonce(n uint64) *Transaction {
	t.build.Nonce = (*hexutil.Uint64)(&n)
	return t
}

func (t *Transaction) Data(d []byte) *Transaction {
	t.build.Data = d
	return t
}

// Args returns a copy of the transaction object built so far.
func (t *Transaction) Args() TxArgs {
	return t.build
}

// Prepare fills nonce, gas price and gas from the node when unset.
// Fee caps count as a gas price.
//
//	Requires client, from
func (t *Transaction) Prepare(ctx context.Context) (*TxArgs, error) {
	switch {
	case t.client == nil:
		return nil, ErrRequiredClient
	case t.build.From == nil:
		return nil, ErrRequiredFrom
	}
	if t.build.Nonce == nil {
		nonce, err := t.client.EthGetTransactionCount(ctx, *t.build.From, Pending)
		if err != nil {
			return nil, err
		}
		if nonce == nil || !nonce.IsUint64() {
			return nil, errors.Wrap(ErrNoResult, EthGetTransactionCount)
		}
		t.Nonce(nonce.Uint64())
	}
	if t.build.GasPrice == nil && t.build.MaxFeePerGas == nil {
		price, err := t.client.EthGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, errors.Wrap(ErrNoResult, EthGasPrice)
		}
		t.GasPrice(price)
	}
	if t.build.Gas == nil {
		if _, err := t.EstimateGas(ctx); err != nil {
			return nil, err
		}
	}
	args := t.build
	return &args, nil
}

// EstimateGas asks the node for the gas of the transaction and keeps it.
func (t *Transaction) EstimateGas(ctx context.Context) (uint64, error) {
	if t.client == nil {
		return 0, ErrRequiredClient
	}
	gas, err := t.client.EthEstimateGas(ctx, t.build, "")
	if err != nil {
		return 0, err
	}
	if gas == nil || !gas.IsUint64() {
		return 0, errors.Wrap(ErrNoResult, EthEstimateGas)
	}
	t.Gas(gas.Uint64())
	return gas.Uint64(), nil
}

// Call executes the transaction at block without sending it and returns the
// returned data.
func (t *Transaction) Call(ctx context.Context, block BlockNumber) (hexutil.Bytes, error) {
	if t.client == nil {
		return nil, ErrRequiredClient
	}
	res, err := t.client.EthCall(ctx, t.build, block)
	if err != nil {
		return nil, err
	}
	var out hexutil.Bytes
	if err := res.Decode(&out); err != nil {
		return nil, errors.Wrapf(err, "%s result", EthCall)
	}
	return out, nil
}

// Send prepares the transaction and submits it, returning its hash.
// It will NOT wait for the transaction to be mined, see Contract.WaitReceipt.
//
//	Requires client, from
func (t *Transaction) Send(ctx context.Context) (common.Hash, error) {
	args, err := t.Prepare(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	res, err := t.client.EthSendTransaction(ctx, args)
	if err != nil {
		return common.Hash{}, err
	}
	var hash common.Hash
	if err := res.Decode(&hash); err != nil {
		return common.Hash{}, errors.Wrapf(err, "%s result", EthSendTransaction)
	}
	return hash, nil
}
