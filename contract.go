package geth

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type (
	Contract struct {
		client   *Client
		address  *common.Address
		bytecode []byte
		from     *common.Address
		poll     time.Duration
	}

	invokeBuilder struct {
		contract *Contract
		build    *Transaction
	}

	// Receipt holds the receipt fields the builders rely on, Raw keeps the
	// full receipt.
	Receipt struct {
		TransactionHash common.Hash     `json:"transactionHash"`
		BlockNumber     *hexutil.Big    `json:"blockNumber"`
		ContractAddress *common.Address `json:"contractAddress"`
		GasUsed         hexutil.Uint64  `json:"gasUsed"`
		Status          hexutil.Uint64  `json:"status"`
		Raw             Result          `json:"-"`
	}
)

var (
	ErrRequiredClient      = errors.New("client is required")
	ErrRequiredFrom        = errors.New("from address is required")
	ErrRequiredAddress     = errors.New("contract address is required")
	ErrRequiredBytecode    = errors.New("bytecode is required")
	ErrNotDeployed         = errors.New("no code at contract address")
	ErrNoContractInReceipt = errors.New("receipt carries no contract address")
)

const defaultPoll = 2 * time.Second

// Succeeded reports whether the transaction did not revert.
func (r *Receipt) Succeeded() bool {
	return r.Status == 1
}

// NewContract returns a Contract builder that can deploy, inspect and invoke
//
// Example:
//
//	contract := geth.NewContract().
//		Client(client).
//		From(account).
//		Bytecode(code)
func NewContract() *Contract {
	return &Contract{poll: defaultPoll}
}

// Client sets the client to use to connect to the node
func (c *Contract) Client(client *Client) *Contract {
	c.client = client
	return c
}

// Address sets the contract address
func (c *Contract) Address(address common.Address) *Contract {
	c.address = &address
	return c
}

// Bytecode sets the creation code used by Deploy
func (c *Contract) Bytecode(code []byte) *Contract {
	c.bytecode = code
	return c
}

// From sets the account sending transactions, it must be unlocked on the node
func (c *Contract) From(from common.Address) *Contract {
	c.from = &from
	return c
}

// PollInterval sets the first delay between receipt polls
func (c *Contract) PollInterval(d time.Duration) *Contract {
	if d > 0 {
		c.poll = d
	}
	return c
}

// GetAddress returns the contract address, set directly or by Deploy.
func (c *Contract) GetAddress() (common.Address, error) {
	if c.address == nil {
		return common.Address{}, ErrRequiredAddress
	}
	return *c.address, nil
}

// Code returns the code deployed at the contract address.
//
//	Requires client, address
func (c *Contract) Code(ctx context.Context, block BlockNumber) (hexutil.Bytes, error) {
	if c.client == nil {
		return nil, ErrRequiredClient
	}
	address, err := c.GetAddress()
	if err != nil {
		return nil, err
	}
	var code hexutil.Bytes
	if err := c.client.CallResult(ctx, EthGetCode, &code, withBlock(block, address)...); err != nil {
		return nil, err
	}
	return code, nil
}

// IsDeployed checks if code is deployed at the contract address.
//
//	Requires client, address
func (c *Contract) IsDeployed(ctx context.Context) (bool, error) {
	code, err := c.Code(ctx, Latest)
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}

// StorageAt returns the storage word at slot.
//
//	Requires client, address
func (c *Contract) StorageAt(ctx context.Context, slot *big.Int, block BlockNumber) (common.Hash, error) {
	if c.client == nil {
		return common.Hash{}, ErrRequiredClient
	}
	address, err := c.GetAddress()
	if err != nil {
		return common.Hash{}, err
	}
	res, err := c.client.EthGetStorageAt(ctx, address, slot, block)
	if err != nil {
		return common.Hash{}, err
	}
	var word common.Hash
	if err := res.Decode(&word); err != nil {
		return common.Hash{}, err
	}
	return word, nil
}

// Deploy sends the creation transaction, waits for it to be mined and sets
// the contract address from the receipt.
//
//	Requires client, from, bytecode
//
//	Example:
//	 receipt, err := geth.NewContract().
//		Client(client).
//		From(account).
//		Bytecode(code).
//		Deploy(ctx)
func (c *Contract) Deploy(ctx context.Context) (*Receipt, error) {
	switch {
	case c.client == nil:
		return nil, ErrRequiredClient
	case c.from == nil:
		return nil, ErrRequiredFrom
	case len(c.bytecode) == 0:
		return nil, ErrRequiredBytecode
	}
	hash, err := NewTransactionBuilder().
		Client(c.client).
		From(*c.from).
		Data(c.bytecode).
		Send(ctx)
	if err != nil {
		return nil, err
	}
	receipt, err := c.WaitReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	if receipt.ContractAddress == nil {
		return receipt, ErrNoContractInReceipt
	}
	c.address = receipt.ContractAddress
	return receipt, nil
}

// Invoke inits the building of a call to the contract.
// It will return an invokeBuilder where calldata and value can be added.
//
//	Example:
//	 out, err := contract.
//		Invoke().
//		Data(calldata).
//		Call(ctx, geth.Latest)
func (c *Contract) Invoke() *invokeBuilder {
	t := NewTransactionBuilder().Client(c.client)
	if c.from != nil {
		t.From(*c.from)
	}
	if c.address != nil {
		t.To(*c.address)
	}
	return &invokeBuilder{contract: c, build: t}
}

// Data sets the calldata
func (i *invokeBuilder) Data(data []byte) *invokeBuilder {
	i.build.Data(data)
	return i
}

// Value sets the wei sent along
func (i *invokeBuilder) Value(v *big.Int) *invokeBuilder {
	i.build.Value(v)
	return i
}

// Gas sets the gas limit, skipping estimation
func (i *invokeBuilder) Gas(g uint64) *invokeBuilder {
	i.build.Gas(g)
	return i
}

// Call executes the invocation without a transaction and returns the output.
//
//	Requires client, address
func (i *invokeBuilder) Call(ctx context.Context, block BlockNumber) (hexutil.Bytes, error) {
	if _, err := i.contract.GetAddress(); err != nil {
		return nil, err
	}
	return i.build.Call(ctx, block)
}

// Send sends the invocation transaction and returns its hash.
// It will return an error if no code is deployed at the address.
// It will NOT check if it was mined, use WaitReceipt with the hash.
//
//	Requires client, address, from
func (i *invokeBuilder) Send(ctx context.Context) (common.Hash, error) {
	deployed, err := i.contract.IsDeployed(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if !deployed {
		return common.Hash{}, ErrNotDeployed
	}
	return i.build.Send(ctx)
}

// WaitReceipt polls the receipt of hash until it is mined or ctx is done.
// The delay between polls grows linearly from the poll interval.
func (c *Contract) WaitReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	if c.client == nil {
		return nil, ErrRequiredClient
	}
	for i := 1; ; i++ {
		res, err := c.client.EthGetTransactionReceipt(ctx, hash)
		if err != nil {
			return nil, err
		}
		if res.Present() && !res.IsNull() {
			receipt := &Receipt{Raw: res}
			if err := json.Unmarshal(res, receipt); err != nil {
				return nil, err
			}
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i) * c.poll):
		}
	}
}
