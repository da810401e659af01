package evm

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

var _ sdk.Executor = (*Executor)(nil)

// Executor is an Executor implementation for EVM chains, submitting state transitions to a
// Caravan wallet.
type Executor struct {
	*Inspector
	auth *bind.TransactOpts
}

// NewExecutor creates a new Executor for the wallet at address, sending transactions with auth.
func NewExecutor(
	client ContractDeployBackend, address common.Address, auth *bind.TransactOpts, opts ...InspectorOption,
) (*Executor, error) {
	inspector, err := NewInspector(client, address, opts...)
	if err != nil {
		return nil, err
	}

	return &Executor{
		Inspector: inspector,
		auth:      auth,
	}, nil
}

// Modify submits an administrative change.
func (e *Executor) Modify(
	ctx context.Context,
	action types.ActionType,
	data []byte,
	signatures []types.Signature,
) (types.TransactionResult, error) {
	calldata, err := e.PackModify(action, data, signatures)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return e.transact(ctx, e.contract, calldata)
}

// Execute submits a batch of calls.
func (e *Executor) Execute(
	ctx context.Context,
	calls []types.Call,
	signatures []types.Signature,
) (types.TransactionResult, error) {
	calldata, err := e.PackExecute(calls, signatures)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return e.transact(ctx, e.contract, calldata)
}

// Batch submits every transition through a single Multicall3 aggregate3 call. Every sub-call
// must succeed.
func (e *Executor) Batch(ctx context.Context, transitions []types.Transition) (types.TransactionResult, error) {
	if e.multicall == nil {
		return types.TransactionResult{}, errors.New("Executor was created without multicall")
	}

	if len(transitions) == 0 {
		return types.TransactionResult{}, errors.New("no transitions to submit")
	}

	calldata := make([][]byte, 0, len(transitions))
	for _, t := range transitions {
		data, err := e.PackTransition(t)
		if err != nil {
			return types.TransactionResult{}, err
		}
		calldata = append(calldata, data)
	}

	_, packed, err := e.PackAggregate3(e.address, calldata)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return e.transact(ctx, e.multicall, packed)
}

func (e *Executor) transact(ctx context.Context, contract *bind.BoundContract, calldata []byte) (types.TransactionResult, error) {
	if e.auth == nil {
		return types.TransactionResult{}, errors.New("Executor was created without transact options")
	}

	opts := *e.auth
	opts.Context = ctx

	tx, err := contract.RawTransact(&opts, calldata)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return toTransactionResult(tx), nil
}

func toTransactionResult(tx *gethtypes.Transaction) types.TransactionResult {
	return types.TransactionResult{
		Hash:           tx.Hash().Hex(),
		RawTransaction: tx,
	}
}
