package evm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

// ErrSessionEnded is returned when a simulation session is used after End.
var ErrSessionEnded = errors.New("simulation session ended")

var _ sdk.Simulator = (*Simulator)(nil)

// Simulator runs calls with eth_call as if they were sent by a wallet.
type Simulator struct {
	client ContractDeployBackend
}

func NewSimulator(client ContractDeployBackend) *Simulator {
	return &Simulator{client: client}
}

// Begin opens a session acting as wallet.
func (s *Simulator) Begin(ctx context.Context, wallet common.Address) (sdk.SimulationSession, error) {
	if _, err := s.client.HeaderByNumber(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to reach chain: %w", err)
	}

	sdk.LoggerFrom(ctx).Debugf("simulating calls as %s", wallet.Hex())

	return &simulationSession{
		client: s.client,
		wallet: wallet,
	}, nil
}

type simulationSession struct {
	client ContractDeployBackend
	wallet common.Address

	mu    sync.Mutex
	calls []types.Call
	ended bool
}

// Call runs call from the wallet. Only successful calls are recorded.
func (s *simulationSession) Call(ctx context.Context, call types.Call) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, ErrSessionEnded
	}

	if err := call.Validate(); err != nil {
		return nil, err
	}

	target := call.Target
	out, err := s.client.CallContract(ctx, ethereum.CallMsg{
		From:  s.wallet,
		To:    &target,
		Value: call.ValueOrZero(),
		Data:  call.Data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("simulated call to %s failed: %w", target.Hex(), err)
	}

	call.Value = call.ValueOrZero()
	call.SuccessRequired = true
	s.calls = append(s.calls, call)

	return out, nil
}

func (s *simulationSession) Calls() []types.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Call, len(s.calls))
	copy(out, s.calls)

	return out
}

func (s *simulationSession) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return ErrSessionEnded
	}
	s.ended = true

	return nil
}
