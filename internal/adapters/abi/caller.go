package abi

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// Caller performs read-only contract calls through a ChainClient
type Caller struct {
	client usecase.ChainClient
}

var _ usecase.ContractCaller = (*Caller)(nil)

// NewCaller creates a new Caller
func NewCaller(client usecase.ChainClient) *Caller {
	return &Caller{client: client}
}

// Call packs method with args, runs it against address at the latest block
// and unpacks the return values.
func (c *Caller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	if contractABI == nil {
		return nil, fmt.Errorf("no ABI to call %s on %s", method, address.Hex())
	}

	input, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &address,
		Data: input,
	})
	if err != nil {
		return nil, fmt.Errorf("call to %s on %s failed: %w", method, address.Hex(), err)
	}

	values, err := contractABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return values, nil
}
