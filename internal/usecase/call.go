package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CallOne is ContractCaller.Call for methods returning a single value of type T
func CallOne[T any](ctx context.Context, caller ContractCaller, address common.Address, contractABI *abi.ABI, method string, args ...any) (T, error) {
	var zero T

	values, err := caller.Call(ctx, address, contractABI, method, args...)
	if err != nil {
		return zero, err
	}
	if len(values) == 0 {
		return zero, fmt.Errorf("%s returned no values", method)
	}

	value, ok := values[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s returned %T, expected %T", method, values[0], zero)
	}

	return value, nil
}
