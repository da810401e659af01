package evm_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/sdk/evm"
)

func moduleLog(t *testing.T, backend *fakeBackend, module common.Address, enabled bool, block uint64, index uint) gethtypes.Log {
	t.Helper()

	event := backend.caravan.Events["ModuleUpdated"]
	data, err := event.Inputs.NonIndexed().Pack(enabled)
	require.NoError(t, err)

	return gethtypes.Log{
		Address:     walletAddr,
		Topics:      []common.Hash{event.ID, common.BytesToHash(module.Bytes())},
		Data:        data,
		BlockNumber: block,
		Index:       index,
	}
}

func TestInspector_Modules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	moduleA := common.HexToAddress("0x00000000000000000000000000000000000000d1")
	moduleB := common.HexToAddress("0x00000000000000000000000000000000000000d2")
	guard := common.HexToAddress("0x00000000000000000000000000000000000000e1")

	backend := newFakeBackend(t, walletAddr)
	backend.block = 42
	backend.modules[moduleA] = true
	backend.adminGuard = guard
	backend.logs = []gethtypes.Log{
		moduleLog(t, backend, moduleA, true, 10, 0),
		moduleLog(t, backend, moduleB, true, 20, 1),
		moduleLog(t, backend, moduleB, false, 30, 0),
	}

	inspector, err := evm.NewInspector(backend, walletAddr)
	require.NoError(t, err)

	block, err := inspector.GetBlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), block)

	updates, err := inspector.GetModuleUpdates(ctx, 0, 25)
	require.NoError(t, err)
	assert.Equal(t, []sdk.ModuleUpdate{
		{Module: moduleA, Enabled: true, BlockNumber: 10, LogIndex: 0},
		{Module: moduleB, Enabled: true, BlockNumber: 20, LogIndex: 1},
	}, updates)

	updates, err = inspector.GetModuleUpdates(ctx, 26, 42)
	require.NoError(t, err)
	assert.Equal(t, []sdk.ModuleUpdate{
		{Module: moduleB, Enabled: false, BlockNumber: 30, LogIndex: 0},
	}, updates)

	enabled, err := inspector.IsModuleEnabled(ctx, moduleA)
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = inspector.IsModuleEnabled(ctx, moduleB)
	require.NoError(t, err)
	assert.False(t, enabled)

	adminGuard, err := inspector.GetAdminGuard(ctx)
	require.NoError(t, err)
	assert.Equal(t, guard, adminGuard)

	executeGuard, err := inspector.GetExecuteGuard(ctx)
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, executeGuard)
}
