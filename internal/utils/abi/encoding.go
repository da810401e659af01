package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Encode is the equivalent of abi.encode over a positional list of ABI type names, e.g.
// Encode([]string{"address[]", "uint256"}, addrs, n).
// See a full set of examples https://github.com/ethereum/go-ethereum/blob/420b78659bef661a83c5c442121b13f13288c09f/accounts/abi/packing_test.go#L31
func Encode(typeNames []string, values ...any) ([]byte, error) {
	args, err := arguments(typeNames)
	if err != nil {
		return nil, err
	}

	if len(values) != len(args) {
		return nil, fmt.Errorf("expected %d values, got %d", len(args), len(values))
	}

	return args.Pack(values...)
}

// Decode is the equivalent of abi.decode. Values come back as go-ethereum's native types:
// common.Address, []common.Address, *big.Int, bool, []byte, string.
func Decode(typeNames []string, data []byte) ([]any, error) {
	args, err := arguments(typeNames)
	if err != nil {
		return nil, err
	}

	return args.Unpack(data)
}

func arguments(typeNames []string) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(typeNames))
	for _, name := range typeNames {
		typ, err := abi.NewType(name, "", nil)
		if err != nil {
			return nil, fmt.Errorf("invalid ABI type %q: %w", name, err)
		}
		args = append(args, abi.Argument{Type: typ})
	}

	return args, nil
}
