package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/types"
)

// Simulator runs calls as if they were sent by a wallet, without submitting them.
//
// This is only required to build execute batches from simulation.
type Simulator interface {
	Begin(ctx context.Context, wallet common.Address) (SimulationSession, error)
}

// SimulationSession records the calls made during one simulation. End must be called exactly
// once.
type SimulationSession interface {
	// Call simulates call and records it if it succeeds.
	Call(ctx context.Context, call types.Call) ([]byte, error)
	// Calls returns the recorded calls in order.
	Calls() []types.Call
	End() error
}
