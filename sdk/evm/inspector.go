package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sourcegraph/conc/pool"

	"github.com/smartcontractkit/caravan/internal/utils/safecast"
	"github.com/smartcontractkit/caravan/sdk"
	sdkerrors "github.com/smartcontractkit/caravan/sdk/errors"
	"github.com/smartcontractkit/caravan/sdk/evm/bindings"
)

var _ sdk.Inspector = (*Inspector)(nil)

// maxApprovalReaders bounds the concurrent per-signer reads used when multicall is unavailable.
const maxApprovalReaders = 8

// Inspector is an Inspector implementation for EVM chains, giving access to the state of a
// Caravan wallet.
type Inspector struct {
	*Encoder
	client    ContractDeployBackend
	address   common.Address
	contract  *bind.BoundContract
	multicall *bind.BoundContract
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithMulticall batches reads through the Multicall3 contract at address.
func WithMulticall(address common.Address) InspectorOption {
	return func(i *Inspector) {
		i.multicall = bind.NewBoundContract(address, *i.Encoder.multicall, i.client, i.client, i.client)
	}
}

// WithoutMulticall disables batched reads.
func WithoutMulticall() InspectorOption {
	return func(i *Inspector) {
		i.multicall = nil
	}
}

// NewInspector creates a new Inspector for the wallet at address. Reads are batched through
// Multicall3 at its canonical address unless overridden.
func NewInspector(client ContractDeployBackend, address common.Address, opts ...InspectorOption) (*Inspector, error) {
	encoder, err := NewEncoder()
	if err != nil {
		return nil, err
	}

	i := &Inspector{
		Encoder:  encoder,
		client:   client,
		address:  address,
		contract: bind.NewBoundContract(address, *encoder.caravan, client, client, client),
	}
	WithMulticall(Multicall3Address)(i)

	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// Address returns the wallet address.
func (e *Inspector) Address() common.Address {
	return e.address
}

// GetHead returns the wallet's current state hash.
func (e *Inspector) GetHead(ctx context.Context) (common.Hash, error) {
	out, err := e.call(ctx, "head")
	if err != nil {
		return common.Hash{}, err
	}

	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// GetThreshold returns the number of signatures required per transition.
func (e *Inspector) GetThreshold(ctx context.Context) (uint64, error) {
	out, err := e.call(ctx, "threshold")
	if err != nil {
		return 0, err
	}

	threshold := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)

	return safecast.BigIntToUint64(threshold)
}

// GetSigners returns the wallet's signers in contract order.
func (e *Inspector) GetSigners(ctx context.Context) ([]common.Address, error) {
	out, err := e.call(ctx, "signers")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// IsApproved reports whether signer approved hash on chain.
func (e *Inspector) IsApproved(ctx context.Context, hash common.Hash, signer common.Address) (bool, error) {
	out, err := e.call(ctx, "approved", hash, signer)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// GetApprovals returns the signers that approved hash on chain, in the order given. Reads are
// batched through multicall and fall back to concurrent single reads if batching fails.
func (e *Inspector) GetApprovals(ctx context.Context, hash common.Hash, signers []common.Address) ([]common.Address, error) {
	if len(signers) == 0 {
		return []common.Address{}, nil
	}

	var (
		approved map[common.Address]bool
		err      error
	)

	if e.multicall != nil {
		approved, err = e.approvalsMulticall(ctx, hash, signers)
		if err != nil {
			sdk.LoggerFrom(ctx).Warnf("multicall approval read failed, falling back to single reads: %v", err)
		}
	}

	if approved == nil {
		approved, err = e.approvalsConcurrent(ctx, hash, signers)
		if err != nil {
			return nil, err
		}
	}

	out := make([]common.Address, 0, len(signers))
	for _, signer := range signers {
		if approved[signer] {
			out = append(out, signer)
		}
	}

	return out, nil
}

// GetVersion returns the version of the wallet implementation.
func (e *Inspector) GetVersion(ctx context.Context) (string, error) {
	out, err := e.call(ctx, "VERSION")
	if err != nil {
		return "", err
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (e *Inspector) approvalsMulticall(
	ctx context.Context, hash common.Hash, signers []common.Address,
) (map[common.Address]bool, error) {
	calldata := make([][]byte, 0, len(signers))
	for _, signer := range signers {
		data, err := e.PackApproved(hash, signer)
		if err != nil {
			return nil, err
		}
		calldata = append(calldata, data)
	}

	calls, _, err := e.PackAggregate3(e.address, calldata)
	if err != nil {
		return nil, err
	}

	var out []any
	if err = e.multicall.Call(&bind.CallOpts{Context: ctx}, &out, "aggregate3", calls); err != nil {
		return nil, err
	}

	results := *abi.ConvertType(out[0], new([]bindings.Multicall3Result)).(*[]bindings.Multicall3Result)
	if len(results) != len(signers) {
		return nil, fmt.Errorf("multicall returned %d results for %d calls", len(results), len(signers))
	}

	approved := make(map[common.Address]bool, len(signers))
	for i, res := range results {
		if !res.Success {
			return nil, sdkerrors.NewMulticallFailedError(i)
		}

		ok, err := e.UnpackApproved(res.ReturnData)
		if err != nil {
			return nil, err
		}
		approved[signers[i]] = ok
	}

	return approved, nil
}

type approval struct {
	signer   common.Address
	approved bool
}

func (e *Inspector) approvalsConcurrent(
	ctx context.Context, hash common.Hash, signers []common.Address,
) (map[common.Address]bool, error) {
	p := pool.NewWithResults[approval]().
		WithMaxGoroutines(maxApprovalReaders).
		WithContext(ctx).
		WithCancelOnError()

	for _, signer := range signers {
		p.Go(func(ctx context.Context) (approval, error) {
			ok, err := e.IsApproved(ctx, hash, signer)
			if err != nil {
				return approval{}, fmt.Errorf("failed to read approval of %s: %w", signer, err)
			}

			return approval{signer: signer, approved: ok}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	approved := make(map[common.Address]bool, len(results))
	for _, r := range results {
		approved[r.signer] = r.approved
	}

	return approved, nil
}

func (e *Inspector) call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	if err := e.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return out, nil
}
