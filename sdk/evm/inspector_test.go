package evm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/sdk/evm"
)

var (
	walletAddr = common.HexToAddress("0xca7a0000000000000000000000000000000000aa")
	signerA    = common.HexToAddress("0x5167000000000000000000000000000000000a0a")
	signerB    = common.HexToAddress("0x5167000000000000000000000000000000000b0b")
	signerC    = common.HexToAddress("0x5167000000000000000000000000000000000c0c")
)

func TestInspector_Reads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend(t, walletAddr)
	backend.head = common.HexToHash("0x1234")
	backend.threshold = 2
	backend.signers = []common.Address{signerA, signerB, signerC}
	backend.approved[signerB] = true
	backend.version = "0.1.0"

	inspector, err := evm.NewInspector(backend, walletAddr)
	require.NoError(t, err)
	assert.Equal(t, walletAddr, inspector.Address())

	head, err := inspector.GetHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, backend.head, head)

	threshold, err := inspector.GetThreshold(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), threshold)

	signers, err := inspector.GetSigners(ctx)
	require.NoError(t, err)
	assert.Equal(t, backend.signers, signers)

	version, err := inspector.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", version)

	ok, err := inspector.IsApproved(ctx, head, signerB)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inspector.IsApproved(ctx, head, signerA)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInspector_GetApprovals(t *testing.T) {
	t.Parallel()

	signers := []common.Address{signerA, signerB, signerC}

	tests := []struct {
		name            string
		multicallErr    error
		opts            []evm.InspectorOption
		wantSingleCalls int
	}{
		{
			name:            "batched through multicall",
			wantSingleCalls: 0,
		},
		{
			name:            "falls back to single reads when multicall fails",
			multicallErr:    errors.New("execution reverted"),
			wantSingleCalls: len(signers),
		},
		{
			name:            "single reads without multicall",
			opts:            []evm.InspectorOption{evm.WithoutMulticall()},
			wantSingleCalls: len(signers),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend(t, walletAddr)
			backend.approved[signerA] = true
			backend.approved[signerC] = true
			backend.multicallErr = tt.multicallErr

			inspector, err := evm.NewInspector(backend, walletAddr, tt.opts...)
			require.NoError(t, err)

			got, err := inspector.GetApprovals(context.Background(), common.HexToHash("0x01"), signers)
			require.NoError(t, err)

			assert.Equal(t, []common.Address{signerA, signerC}, got)
			assert.Equal(t, tt.wantSingleCalls, backend.singleCalls)
		})
	}
}

func TestInspector_GetApprovals_NoSigners(t *testing.T) {
	t.Parallel()

	inspector, err := evm.NewInspector(newFakeBackend(t, walletAddr), walletAddr)
	require.NoError(t, err)

	got, err := inspector.GetApprovals(context.Background(), common.HexToHash("0x01"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
