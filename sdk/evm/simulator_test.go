package evm_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/types"
)

func newSimulatedBackend(t *testing.T, funded common.Address, balance *big.Int) *simulated.Backend {
	t.Helper()

	backend := simulated.NewBackend(gethtypes.GenesisAlloc{
		funded: {Balance: balance},
	})
	t.Cleanup(func() {
		require.NoError(t, backend.Close())
	})

	return backend
}

func TestSimulator_RecordsSuccessfulCalls(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newSimulatedBackend(t, walletAddr, big.NewInt(1000))
	sim := evm.NewSimulator(backend.Client())

	session, err := sim.Begin(ctx, walletAddr)
	require.NoError(t, err)

	_, err = session.Call(ctx, types.Call{Target: signerA, Value: big.NewInt(10)})
	require.NoError(t, err)

	_, err = session.Call(ctx, types.Call{Target: signerB, Value: big.NewInt(1_000_000)})
	require.Error(t, err)

	_, err = session.Call(ctx, types.NewCall(signerC, []byte{0x01}))
	require.NoError(t, err)

	calls := session.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, signerA, calls[0].Target)
	assert.Equal(t, big.NewInt(10), calls[0].Value)
	assert.True(t, calls[0].SuccessRequired)
	assert.Equal(t, signerC, calls[1].Target)

	require.NoError(t, session.End())
}

func TestSimulator_SessionEnded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newSimulatedBackend(t, walletAddr, big.NewInt(1000))

	session, err := evm.NewSimulator(backend.Client()).Begin(ctx, walletAddr)
	require.NoError(t, err)
	require.NoError(t, session.End())

	_, err = session.Call(ctx, types.NewCall(signerA, nil))
	require.ErrorIs(t, err, evm.ErrSessionEnded)
	require.ErrorIs(t, session.End(), evm.ErrSessionEnded)
}

func TestSimulator_NegativeValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newSimulatedBackend(t, walletAddr, big.NewInt(1000))

	session, err := evm.NewSimulator(backend.Client()).Begin(ctx, walletAddr)
	require.NoError(t, err)
	defer func() { _ = session.End() }()

	_, err = session.Call(ctx, types.Call{Target: signerA, Value: big.NewInt(-1)})
	require.ErrorIs(t, err, types.ErrNegativeValue)
	assert.Empty(t, session.Calls())
}
