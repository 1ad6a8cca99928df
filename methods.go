package geth

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// Methods
const (
	Web3ClientVersion = "web3_clientVersion"
	Web3Sha3          = "web3_sha3"

	NetVersion   = "net_version"
	NetPeerCount = "net_peerCount"
	NetListening = "net_listening"

	EthProtocolVersion                     = "eth_protocolVersion"
	EthSyncing                             = "eth_syncing"
	EthCoinbase                            = "eth_coinbase"
	EthMining                              = "eth_mining"
	EthHashrate                            = "eth_hashrate"
	EthGasPrice                            = "eth_gasPrice"
	EthAccounts                            = "eth_accounts"
	EthBlockNumber                         = "eth_blockNumber"
	EthGetBalance                          = "eth_getBalance"
	EthGetStorageAt                        = "eth_getStorageAt"
	EthGetTransactionCount                 = "eth_getTransactionCount"
	EthGetBlockTransactionCountByHash      = "eth_getBlockTransactionCountByHash"
	EthGetBlockTransactionCountByNumber    = "eth_getBlockTransactionCountByNumber"
	EthGetUncleCountByBlockHash            = "eth_getUncleCountByBlockHash"
	EthGetUncleCountByBlockNumber          = "eth_getUncleCountByBlockNumber"
	EthGetCode                             = "eth_getCode"
	EthSign                                = "eth_sign"
	EthSendTransaction                     = "eth_sendTransaction"
	EthSendRawTransaction                  = "eth_sendRawTransaction"
	EthCall                                = "eth_call"
	EthEstimateGas                         = "eth_estimateGas"
	EthGetBlockByHash                      = "eth_getBlockByHash"
	EthGetBlockByNumber                    = "eth_getBlockByNumber"
	EthGetTransactionByHash                = "eth_getTransactionByHash"
	EthGetTransactionByBlockHashAndIndex   = "eth_getTransactionByBlockHashAndIndex"
	EthGetTransactionByBlockNumberAndIndex = "eth_getTransactionByBlockNumberAndIndex"
	EthGetTransactionReceipt               = "eth_getTransactionReceipt"
	EthGetUncleByBlockHashAndIndex         = "eth_getUncleByBlockHashAndIndex"
	EthGetUncleByBlockNumberAndIndex       = "eth_getUncleByBlockNumberAndIndex"
	EthGetCompilers                        = "eth_getCompilers"
	EthCompileSolidity                     = "eth_compileSolidity"
	EthCompileLLL                          = "eth_compileLLL"
	EthCompileSerpent                      = "eth_compileSerpent"
	EthNewFilter                           = "eth_newFilter"
	EthNewBlockFilter                      = "eth_newBlockFilter"
	EthNewPendingTransactionFilter         = "eth_newPendingTransactionFilter"
	EthUninstallFilter                     = "eth_uninstallFilter"
	EthGetFilterChanges                    = "eth_getFilterChanges"
	EthGetFilterLogs                       = "eth_getFilterLogs"
	EthGetLogs                             = "eth_getLogs"
	EthGetWork                             = "eth_getWork"
	EthSubmitWork                          = "eth_submitWork"
	EthSubmitHashrate                      = "eth_submitHashrate"

	ShhVersion          = "shh_version"
	ShhPost             = "shh_post"
	ShhNewIdentity      = "shh_newIdentity"
	ShhHasIdentity      = "shh_hasIdentity"
	ShhNewGroup         = "shh_newGroup"
	ShhAddToGroup       = "shh_addToGroup"
	ShhNewFilter        = "shh_newFilter"
	ShhUninstallFilter  = "shh_uninstallFilter"
	ShhGetFilterChanges = "shh_getFilterChanges"
	ShhGetMessages      = "shh_getMessages"
)

// Policy is the post-processing applied to the result of a method.
type Policy int

const (
	// PolicyRaw returns the result as received.
	PolicyRaw Policy = iota
	// PolicyQuantity decodes the whole result as one hex integer.
	PolicyQuantity
	// PolicyQuantityFields decodes every member of an object result as a
	// hex integer.
	PolicyQuantityFields
)

func (p Policy) String() string {
	switch p {
	case PolicyQuantity:
		return "quantity"
	case PolicyQuantityFields:
		return "quantity-fields"
	default:
		return "raw"
	}
}

var catalogue = map[string]Policy{
	Web3ClientVersion: PolicyRaw,
	Web3Sha3:          PolicyRaw,

	NetVersion:   PolicyRaw,
	NetPeerCount: PolicyQuantity,
	NetListening: PolicyRaw,

	EthProtocolVersion:                     PolicyQuantity,
	EthSyncing:                             PolicyQuantityFields,
	EthCoinbase:                            PolicyRaw,
	EthMining:                              PolicyRaw,
	EthHashrate:                            PolicyQuantity,
	EthGasPrice:                            PolicyQuantity,
	EthAccounts:                            PolicyRaw,
	EthBlockNumber:                         PolicyQuantity,
	EthGetBalance:                          PolicyQuantity,
	EthGetStorageAt:                        PolicyRaw,
	EthGetTransactionCount:                 PolicyQuantity,
	EthGetBlockTransactionCountByHash:      PolicyQuantity,
	EthGetBlockTransactionCountByNumber:    PolicyQuantity,
	EthGetUncleCountByBlockHash:            PolicyQuantity,
	EthGetUncleCountByBlockNumber:          PolicyQuantity,
	EthGetCode:                             PolicyRaw,
	EthSign:                                PolicyRaw,
	EthSendTransaction:                     PolicyRaw,
	EthSendRawTransaction:                  PolicyRaw,
	EthCall:                                PolicyRaw,
	EthEstimateGas:                         PolicyQuantity,
	EthGetBlockByHash:                      PolicyRaw,
	EthGetBlockByNumber:                    PolicyRaw,
	EthGetTransactionByHash:                PolicyRaw,
	EthGetTransactionByBlockHashAndIndex:   PolicyRaw,
	EthGetTransactionByBlockNumberAndIndex: PolicyRaw,
	EthGetTransactionReceipt:               PolicyRaw,
	EthGetUncleByBlockHashAndIndex:         PolicyRaw,
	EthGetUncleByBlockNumberAndIndex:       PolicyRaw,
	EthGetCompilers:                        PolicyRaw,
	EthCompileSolidity:                     PolicyRaw,
	EthCompileLLL:                          PolicyRaw,
	EthCompileSerpent:                      PolicyRaw,
	EthNewFilter:                           PolicyQuantity,
	EthNewBlockFilter:                      PolicyQuantity,
	EthNewPendingTransactionFilter:         PolicyQuantity,
	EthUninstallFilter:                     PolicyRaw,
	EthGetFilterChanges:                    PolicyRaw,
	EthGetFilterLogs:                       PolicyRaw,
	EthGetLogs:                             PolicyRaw,
	EthGetWork:                             PolicyRaw,
	EthSubmitWork:                          PolicyRaw,
	EthSubmitHashrate:                      PolicyRaw,

	ShhVersion:          PolicyRaw,
	ShhPost:             PolicyRaw,
	ShhNewIdentity:      PolicyRaw,
	ShhHasIdentity:      PolicyRaw,
	ShhNewGroup:         PolicyRaw,
	ShhAddToGroup:       PolicyRaw,
	ShhNewFilter:        PolicyQuantity,
	ShhUninstallFilter:  PolicyRaw,
	ShhGetFilterChanges: PolicyRaw,
	ShhGetMessages:      PolicyRaw,
}

// Methods returns the names of all catalogued methods, sorted.
func Methods() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PolicyOf returns the policy of method and whether it is catalogued.
// Unknown methods are passed through raw.
func PolicyOf(method string) (Policy, bool) {
	p, ok := catalogue[method]
	return p, ok
}

// Dispatch calls method and applies its catalogued policy. The returned value
// is a *big.Int for quantities, a *SyncStatus for eth_syncing and the generic
// form of Result.Value otherwise.
func (c *Client) Dispatch(ctx context.Context, method string, args ...any) (any, error) {
	res, err := c.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	policy, _ := PolicyOf(method)
	return postProcess(method, policy, res)
}

func postProcess(method string, policy Policy, res Result) (any, error) {
	switch policy {
	case PolicyQuantity:
		n, err := decodeQuantity(res)
		if err != nil {
			return nil, errors.Wrap(err, method)
		}
		if n == nil {
			return nil, nil
		}
		return n, nil
	case PolicyQuantityFields:
		s, err := decodeQuantityFields(res)
		if err != nil {
			return nil, errors.Wrap(err, method)
		}
		return s, nil
	default:
		return res.Value()
	}
}
