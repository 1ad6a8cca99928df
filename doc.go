/*
Package geth is a client for the JSON-RPC 2.0 API of geth and other
Ethereum compatible nodes, over HTTP.

# Example

	client := geth.New(geth.Port(8545))
	balance, err := client.EthGetBalance(ctx, account, geth.Latest)

sends:

	{"jsonrpc":"2.0","method":"eth_getBalance","params":["0x407d73d8a49eeb85d32cf465507dd71d507100c1","latest"],"id":1}

and turns the answer

	{"jsonrpc":"2.0","id":1,"result":"0x2a"}

into big.NewInt(42).

# Methods

Every method of the catalogue (see [Methods]) has a wrapper named after it,
`eth_getBalance` is [Client.EthGetBalance]. Results are post-processed by the
[Policy] of the method:
  - raw methods return the [Result] as received, decode it with [Result.Decode]
    or [Result.Value]
  - quantity methods (`eth_blockNumber`, `net_peerCount`, filter creation...)
    return a *big.Int
  - `eth_syncing` returns a [SyncStatus] with every field decoded

Any other method goes through [Client.Call], or [Client.Dispatch] to apply the
catalogued policy.

# Errors

A node-side error is returned as *[Error] carrying the code and message of the
node. Failures to reach the node are *[TransportError]. A response with
neither result nor error is not an error: the Result is nil.
*/
package geth
