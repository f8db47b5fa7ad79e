// Package rpcclient retrieves stake pool account data over Solana RPC.
// Decoding stays in pkg/stakepool; this package only moves bytes.
package rpcclient

import (
	"github.com/gagliardetto/solana-go/rpc"
)

type Client struct {
	client *rpc.Client
}

func New(endpoint string) *Client {
	return &Client{client: rpc.New(endpoint)}
}
