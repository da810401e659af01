package caravan_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/sdk/mocks"
)

func TestModuleCache_Refresh(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	m1 := common.HexToAddress("0x1100000000000000000000000000000000000001")
	m2 := common.HexToAddress("0x1100000000000000000000000000000000000002")

	inspector := mocks.NewModuleInspector(t)
	// out of log order: m1 is enabled then disabled in block 12
	inspector.EXPECT().GetModuleUpdates(mock.Anything, uint64(5), uint64(20)).Return([]sdk.ModuleUpdate{
		{Module: m1, Enabled: false, BlockNumber: 12, LogIndex: 3},
		{Module: m2, Enabled: true, BlockNumber: 8},
		{Module: m1, Enabled: true, BlockNumber: 12, LogIndex: 1},
	}, nil).Once()
	inspector.EXPECT().GetModuleUpdates(mock.Anything, uint64(21), uint64(30)).Return([]sdk.ModuleUpdate{
		{Module: m1, Enabled: true, BlockNumber: 25},
	}, nil).Once()

	cache := caravan.NewModuleCache(inspector, 5)

	_, synced := cache.LastSynced()
	assert.False(t, synced)

	require.NoError(t, cache.Refresh(ctx, 20))
	assert.Equal(t, []common.Address{m2}, cache.Enabled())

	// nothing new to read
	require.NoError(t, cache.Refresh(ctx, 20))

	require.NoError(t, cache.Refresh(ctx, 30))
	assert.Equal(t, []common.Address{m1, m2}, cache.Enabled())

	last, synced := cache.LastSynced()
	assert.True(t, synced)
	assert.Equal(t, uint64(30), last)
}

func TestModuleCache_RefreshError(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewModuleInspector(t)
	inspector.EXPECT().GetModuleUpdates(mock.Anything, uint64(0), uint64(9)).Return(nil, errors.New("rpc down"))

	cache := caravan.NewModuleCache(inspector, 0)

	err := cache.Refresh(testContext(t), 9)
	require.EqualError(t, err, "failed to read module updates in [0, 9]: rpc down")

	_, synced := cache.LastSynced()
	assert.False(t, synced)
}

func TestModuleCache_Contains(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	cached := common.HexToAddress("0x01")
	onchain := common.HexToAddress("0x02")

	inspector := mocks.NewModuleInspector(t)
	inspector.EXPECT().GetModuleUpdates(mock.Anything, uint64(0), uint64(1)).
		Return([]sdk.ModuleUpdate{{Module: cached, Enabled: true, BlockNumber: 1}}, nil)
	inspector.EXPECT().IsModuleEnabled(mock.Anything, onchain).Return(true, nil).Once()

	cache := caravan.NewModuleCache(inspector, 0)
	require.NoError(t, cache.Refresh(ctx, 1))

	tests := []struct {
		name   string
		module common.Address
	}{
		{name: "from cache", module: cached},
		{name: "from chain", module: onchain},
	}

	for _, tt := range tests {
		enabled, err := cache.Contains(ctx, tt.module)
		require.NoError(t, err, tt.name)
		assert.True(t, enabled, tt.name)
	}
}
