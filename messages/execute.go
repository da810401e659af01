package messages

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

const (
	// MaxCalls is the maximum number of calls in one Execute batch.
	MaxCalls = 8

	// MaxCalldataSize is the maximum length of a single call's data.
	MaxCalldataSize = 16388
)

const (
	executeTypeName = "Execute"
	callTypeName    = "Call"
)

var (
	executeType = []apitypes.Type{
		{Name: "parent", Type: "bytes32"},
		{Name: "calls", Type: "Call[]"},
	}

	callType = []apitypes.Type{
		{Name: "target", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "success_required", Type: "bool"},
		{Name: "data", Type: "bytes"},
	}
)

// Execute is a batch of external calls made by the wallet.
type Execute struct {
	digest

	domain types.Domain
	parent common.Hash
	calls  []types.Call
}

var _ Message = (*Execute)(nil)

// NewExecute builds an Execute message from calls, applying the same limits as ExecuteBuilder.
func NewExecute(domain types.Domain, parent common.Hash, calls ...types.Call) (*Execute, error) {
	b := NewExecuteBuilder(domain, parent)
	for _, call := range calls {
		if err := b.AddCall(call); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

func (*Execute) isMessage() {}

func (e *Execute) Parent() common.Hash {
	return e.parent
}

func (e *Execute) Domain() types.Domain {
	return e.domain
}

func (e *Execute) Kind() Kind {
	return KindExecute
}

func (e *Execute) Title() string {
	return fmt.Sprintf("Execute %d call(s)", len(e.calls))
}

// Calls returns a copy of the calls in execution order.
func (e *Execute) Calls() []types.Call {
	out := make([]types.Call, len(e.calls))
	copy(out, e.calls)

	return out
}

func (e *Execute) TypedData() apitypes.TypedData {
	calls := make([]interface{}, 0, len(e.calls))
	for _, c := range e.calls {
		calls = append(calls, map[string]interface{}{
			"target":           c.Target.Hex(),
			"value":            c.ValueOrZero(),
			"success_required": c.SuccessRequired,
			"data":             common.CopyBytes(c.Data),
		})
	}

	return apitypes.TypedData{
		Types: typesWith(apitypes.Types{
			executeTypeName: executeType,
			callTypeName:    callType,
		}),
		PrimaryType: executeTypeName,
		Domain:      e.domain.TypedDataDomain(),
		Message: apitypes.TypedDataMessage{
			"parent": e.parent.Bytes(),
			"calls":  calls,
		},
	}
}

// Render returns one field per call.
func (e *Execute) Render() []types.Field {
	fields := make([]types.Field, 0, len(e.calls))
	for i, c := range e.calls {
		fields = append(fields, types.Field{Name: fmt.Sprintf("Call %d", i), Value: c.Render()})
	}

	return fields
}

// ExecuteBuilder accumulates calls for an Execute message. Limits are enforced as each call is
// added.
type ExecuteBuilder struct {
	domain types.Domain
	parent common.Hash
	calls  []types.Call
}

// NewExecuteBuilder creates an empty builder for a batch building on parent.
func NewExecuteBuilder(domain types.Domain, parent common.Hash) *ExecuteBuilder {
	return &ExecuteBuilder{
		domain: domain,
		parent: parent,
		calls:  make([]types.Call, 0, MaxCalls),
	}
}

// Len returns the number of calls added so far.
func (b *ExecuteBuilder) Len() int {
	return len(b.calls)
}

// AddCall appends a call. It fails with ErrCapacityExceeded once MaxCalls calls were added and
// with ErrPayloadTooLarge if the call data is longer than MaxCalldataSize.
func (b *ExecuteBuilder) AddCall(call types.Call) error {
	if err := checkCall(len(b.calls), call); err != nil {
		return err
	}

	call.Value = call.ValueOrZero()
	call.Data = common.CopyBytes(call.Data)
	b.calls = append(b.calls, call)

	return nil
}

// AddRaw appends a call built from its parts.
func (b *ExecuteBuilder) AddRaw(target common.Address, value *big.Int, data []byte, successRequired bool) error {
	return b.AddCall(types.Call{
		Target:          target,
		Value:           value,
		SuccessRequired: successRequired,
		Data:            data,
	})
}

// AddTransfer appends a plain native token transfer.
func (b *ExecuteBuilder) AddTransfer(to common.Address, amount *big.Int) error {
	return b.AddRaw(to, amount, nil, true)
}

// AddContractCall appends a call to method of a contract described by contractABI.
func (b *ExecuteBuilder) AddContractCall(
	target common.Address, contractABI *abi.ABI, value *big.Int, method string, args ...any,
) error {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	return b.AddRaw(target, value, data, true)
}

// AddFromSimulation runs fn inside a simulation session acting as wallet and appends every call
// it recorded. The session is always ended. Either all recorded calls are added or none are.
func (b *ExecuteBuilder) AddFromSimulation(
	ctx context.Context,
	sim sdk.Simulator,
	wallet common.Address,
	fn func(ctx context.Context, session sdk.SimulationSession) error,
) (err error) {
	session, err := sim.Begin(ctx, wallet)
	if err != nil {
		return fmt.Errorf("failed to begin simulation: %w", err)
	}
	defer func() {
		if endErr := session.End(); endErr != nil && err == nil {
			err = fmt.Errorf("failed to end simulation: %w", endErr)
		}
	}()

	if err = fn(ctx, session); err != nil {
		return err
	}

	recorded := session.Calls()
	for i, call := range recorded {
		if err = checkCall(len(b.calls)+i, call); err != nil {
			return err
		}
	}

	for _, call := range recorded {
		if err = b.AddCall(call); err != nil {
			return err
		}
	}

	return nil
}

// Build returns the Execute message.
func (b *ExecuteBuilder) Build() (*Execute, error) {
	if err := b.domain.Validate(); err != nil {
		return nil, err
	}

	e := &Execute{
		domain: b.domain,
		parent: b.parent,
		calls:  make([]types.Call, len(b.calls)),
	}
	copy(e.calls, b.calls)

	d, err := newDigest(e.TypedData())
	if err != nil {
		return nil, err
	}
	e.digest = d

	return e, nil
}

func checkCall(index int, call types.Call) error {
	if index >= MaxCalls {
		return fmt.Errorf("%w: at most %d calls", ErrCapacityExceeded, MaxCalls)
	}

	if len(call.Data) > MaxCalldataSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadTooLarge, len(call.Data), MaxCalldataSize)
	}

	return call.Validate()
}
