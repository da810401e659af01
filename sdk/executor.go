package sdk

import (
	"context"

	"github.com/smartcontractkit/caravan/types"
)

// Executor is an interface for submitting state transitions to a Caravan wallet.
type Executor interface {
	Inspector

	// Modify submits an administrative change. Returns the transaction hash.
	Modify(
		ctx context.Context,
		action types.ActionType,
		data []byte,
		signatures []types.Signature,
	) (types.TransactionResult, error)

	// Execute submits a batch of calls. Returns the transaction hash.
	Execute(
		ctx context.Context,
		calls []types.Call,
		signatures []types.Signature,
	) (types.TransactionResult, error)

	// Batch submits several transitions in a single transaction, in order.
	Batch(ctx context.Context, transitions []types.Transition) (types.TransactionResult, error)
}
