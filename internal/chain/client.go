package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Head is the chain tip as reported by the RPC node.
type Head struct {
	Number uint64
	Time   time.Time
}

// Client wraps go-ethereum RPC and provides helper methods.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// NewClient creates a new chain client from the RPC URL.
func NewClient(ctx context.Context, rpcURL string) (*Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpc url is required")
	}
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// ChainID returns the chain ID.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.ethClient.ChainID(ctx)
}

// LatestHead returns the number and timestamp of the latest header.
func (c *Client) LatestHead(ctx context.Context) (Head, error) {
	header, err := c.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return Head{}, fmt.Errorf("latest header: %w", err)
	}
	if !header.Number.IsUint64() {
		return Head{}, fmt.Errorf("header number does not fit in uint64: %s", header.Number)
	}
	return Head{
		Number: header.Number.Uint64(),
		Time:   time.Unix(int64(header.Time), 0).UTC(),
	}, nil
}
