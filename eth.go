package geth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// BlockNumber is a block parameter: a tag or a hex encoded number.
// The empty BlockNumber is left out of the params.
type BlockNumber string

const (
	Latest    BlockNumber = "latest"
	Earliest  BlockNumber = "earliest"
	Pending   BlockNumber = "pending"
	Safe      BlockNumber = "safe"
	Finalized BlockNumber = "finalized"
)

// BlockNumberOf returns the BlockNumber of height n.
func BlockNumberOf(n uint64) BlockNumber {
	return BlockNumber(hexutil.EncodeUint64(n))
}

func withBlock(block BlockNumber, args ...any) []any {
	if block == "" {
		return args
	}
	return append(args, block)
}

func (c *Client) EthProtocolVersion(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthProtocolVersion)
}

// EthSyncing returns the sync progress with every field decoded. Any other
// answer is kept in Raw with Syncing set from its truthiness.
func (c *Client) EthSyncing(ctx context.Context) (*SyncStatus, error) {
	res, err := c.Call(ctx, EthSyncing)
	if err != nil {
		return nil, err
	}
	status, err := decodeQuantityFields(res)
	if err != nil {
		return nil, errors.Wrap(err, EthSyncing)
	}
	return status, nil
}

func (c *Client) EthCoinbase(ctx context.Context) (Result, error) {
	return c.Call(ctx, EthCoinbase)
}

func (c *Client) EthMining(ctx context.Context) (Result, error) {
	return c.Call(ctx, EthMining)
}

// EthHashrate returns the hashes per second the node is mining with.
func (c *Client) EthHashrate(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthHashrate)
}

// EthGasPrice returns the current gas price in wei.
func (c *Client) EthGasPrice(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthGasPrice)
}

func (c *Client) EthAccounts(ctx context.Context) (Result, error) {
	return c.Call(ctx, EthAccounts)
}

// EthBlockNumber returns the height of the most recent block.
func (c *Client) EthBlockNumber(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthBlockNumber)
}

// EthGetBalance returns the balance in wei of account at block.
func (c *Client) EthGetBalance(ctx context.Context, account common.Address, block BlockNumber) (*big.Int, error) {
	return c.quantity(ctx, EthGetBalance, withBlock(block, account)...)
}

// EthGetStorageAt returns the storage word of account at position.
func (c *Client) EthGetStorageAt(ctx context.Context, account common.Address, position *big.Int, block BlockNumber) (Result, error) {
	return c.Call(ctx, EthGetStorageAt, withBlock(block, account, encodeQuantity(position))...)
}

// EthGetTransactionCount returns the number of transactions sent from account.
func (c *Client) EthGetTransactionCount(ctx context.Context, account common.Address, block BlockNumber) (*big.Int, error) {
	return c.quantity(ctx, EthGetTransactionCount, withBlock(block, account)...)
}

func (c *Client) EthGetBlockTransactionCountByHash(ctx context.Context, hash common.Hash) (*big.Int, error) {
	return c.quantity(ctx, EthGetBlockTransactionCountByHash, hash)
}

func (c *Client) EthGetBlockTransactionCountByNumber(ctx context.Context, block BlockNumber) (*big.Int, error) {
	return c.quantity(ctx, EthGetBlockTransactionCountByNumber, withBlock(block)...)
}

func (c *Client) EthGetUncleCountByBlockHash(ctx context.Context, hash common.Hash) (*big.Int, error) {
	return c.quantity(ctx, EthGetUncleCountByBlockHash, hash)
}

func (c *Client) EthGetUncleCountByBlockNumber(ctx context.Context, block BlockNumber) (*big.Int, error) {
	return c.quantity(ctx, EthGetUncleCountByBlockNumber, withBlock(block)...)
}

// EthGetCode returns the code deployed at account.
func (c *Client) EthGetCode(ctx context.Context, account common.Address, block BlockNumber) (Result, error) {
	return c.Call(ctx, EthGetCode, withBlock(block, account)...)
}

// EthSign asks the node to sign message with an unlocked account.
func (c *Client) EthSign(ctx context.Context, account common.Address, message hexutil.Bytes) (Result, error) {
	return c.Call(ctx, EthSign, account, message)
}

// EthSendTransaction sends tx, a TxArgs or any JSON object, from an account
// unlocked on the node.
func (c *Client) EthSendTransaction(ctx context.Context, tx any) (Result, error) {
	return c.Call(ctx, EthSendTransaction, tx)
}

// EthSendRawTransaction submits a signed transaction.
func (c *Client) EthSendRawTransaction(ctx context.Context, data hexutil.Bytes) (Result, error) {
	return c.Call(ctx, EthSendRawTransaction, data)
}

// EthCall executes tx at block without creating a transaction.
func (c *Client) EthCall(ctx context.Context, tx any, block BlockNumber) (Result, error) {
	return c.Call(ctx, EthCall, withBlock(block, tx)...)
}

// EthEstimateGas returns the gas tx would use at block.
func (c *Client) EthEstimateGas(ctx context.Context, tx any, block BlockNumber) (*big.Int, error) {
	return c.quantity(ctx, EthEstimateGas, withBlock(block, tx)...)
}

func (c *Client) EthGetBlockByHash(ctx context.Context, hash common.Hash, full bool) (Result, error) {
	return c.Call(ctx, EthGetBlockByHash, hash, full)
}

func (c *Client) EthGetBlockByNumber(ctx context.Context, block BlockNumber, full bool) (Result, error) {
	return c.Call(ctx, EthGetBlockByNumber, block, full)
}

func (c *Client) EthGetTransactionByHash(ctx context.Context, hash common.Hash) (Result, error) {
	return c.Call(ctx, EthGetTransactionByHash, hash)
}

func (c *Client) EthGetTransactionByBlockHashAndIndex(ctx context.Context, hash common.Hash, index uint64) (Result, error) {
	return c.Call(ctx, EthGetTransactionByBlockHashAndIndex, hash, hexutil.Uint64(index))
}

func (c *Client) EthGetTransactionByBlockNumberAndIndex(ctx context.Context, block BlockNumber, index uint64) (Result, error) {
	return c.Call(ctx, EthGetTransactionByBlockNumberAndIndex, block, hexutil.Uint64(index))
}

// EthGetTransactionReceipt returns the receipt of a mined transaction, a null
// result while it is pending.
func (c *Client) EthGetTransactionReceipt(ctx context.Context, hash common.Hash) (Result, error) {
	return c.Call(ctx, EthGetTransactionReceipt, hash)
}

func (c *Client) EthGetUncleByBlockHashAndIndex(ctx context.Context, hash common.Hash, index uint64) (Result, error) {
	return c.Call(ctx, EthGetUncleByBlockHashAndIndex, hash, hexutil.Uint64(index))
}

func (c *Client) EthGetUncleByBlockNumberAndIndex(ctx context.Context, block BlockNumber, index uint64) (Result, error) {
	return c.Call(ctx, EthGetUncleByBlockNumberAndIndex, block, hexutil.Uint64(index))
}

func (c *Client) EthGetCompilers(ctx context.Context) (Result, error) {
	return c.Call(ctx, EthGetCompilers)
}

func (c *Client) EthCompileSolidity(ctx context.Context, source string) (Result, error) {
	return c.Call(ctx, EthCompileSolidity, source)
}

func (c *Client) EthCompileLLL(ctx context.Context, source string) (Result, error) {
	return c.Call(ctx, EthCompileLLL, source)
}

func (c *Client) EthCompileSerpent(ctx context.Context, source string) (Result, error) {
	return c.Call(ctx, EthCompileSerpent, source)
}

// EthNewFilter installs a log filter described by query and returns its id.
func (c *Client) EthNewFilter(ctx context.Context, query any) (*big.Int, error) {
	return c.quantity(ctx, EthNewFilter, query)
}

func (c *Client) EthNewBlockFilter(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthNewBlockFilter)
}

func (c *Client) EthNewPendingTransactionFilter(ctx context.Context) (*big.Int, error) {
	return c.quantity(ctx, EthNewPendingTransactionFilter)
}

func (c *Client) EthUninstallFilter(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, EthUninstallFilter, encodeQuantity(id))
}

// EthGetFilterChanges returns what happened since the previous poll of id.
func (c *Client) EthGetFilterChanges(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, EthGetFilterChanges, encodeQuantity(id))
}

func (c *Client) EthGetFilterLogs(ctx context.Context, id *big.Int) (Result, error) {
	return c.Call(ctx, EthGetFilterLogs, encodeQuantity(id))
}

// EthGetLogs returns the logs matching query.
func (c *Client) EthGetLogs(ctx context.Context, query any) (Result, error) {
	return c.Call(ctx, EthGetLogs, query)
}

// EthGetWork returns the header pow-hash, seed hash and boundary condition.
func (c *Client) EthGetWork(ctx context.Context) (Result, error) {
	return c.Call(ctx, EthGetWork)
}

// EthSubmitWork submits a proof-of-work solution.
func (c *Client) EthSubmitWork(ctx context.Context, nonce hexutil.Bytes, powHash, mixDigest common.Hash) (Result, error) {
	return c.Call(ctx, EthSubmitWork, nonce, powHash, mixDigest)
}

// EthSubmitHashrate reports the hash rate of the miner identified by id.
func (c *Client) EthSubmitHashrate(ctx context.Context, rate uint64, id common.Hash) (Result, error) {
	return c.Call(ctx, EthSubmitHashrate, hexutil.Uint64(rate), id)
}
