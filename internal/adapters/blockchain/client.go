package blockchain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/domain/config"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// callTimeout bounds every single RPC round trip
const callTimeout = 10 * time.Second

// Client implements ChainClient over an ETH/RPC gateway. The connection is
// opened on first use, so commands that never touch the chain never dial.
type Client struct {
	rpcURL string

	mu     sync.Mutex
	client *ethclient.Client
}

var _ usecase.ChainClient = (*Client)(nil)

// NewClient creates a client for the configured gateway
func NewClient(cfg *config.RuntimeConfig) *Client {
	return &Client{rpcURL: cfg.RPCURL}
}

func (c *Client) connect(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	rpcClient, err := rpc.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRPCUnreachable, err)
	}

	c.client = ethclient.NewClient(rpcClient)
	return c.client, nil
}

// ChainID returns the chain id of the connected network. Any failure means
// the gateway is unusable and is reported as domain.ErrRPCUnreachable.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w at %s: %v", domain.ErrRPCUnreachable, c.rpcURL, err)
	}
	return chainID.Uint64(), nil
}

// CodeAt returns the deployed bytecode at address on the latest block
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", address.Hex(), err)
	}
	return code, nil
}

// CallContract executes a read-only call on the latest block
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	return client.CallContract(ctx, msg, nil)
}

// Signer returns the first account unlocked on the node, or the zero address
func (c *Client) Signer(ctx context.Context) (common.Address, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return common.Address{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var accounts []common.Address
	if err := client.Client().CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return common.Address{}, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, nil
	}
	return accounts[0], nil
}

// Close releases the underlying connection, if any
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
