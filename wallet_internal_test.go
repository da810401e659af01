package caravan

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils/chaintest"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

func TestApplyRotation(t *testing.T) {
	t.Parallel()

	var (
		parent = common.HexToHash("0x9e0e5150")
		s1     = common.HexToAddress("0x1000000000000000000000000000000000000001")
		s2     = common.HexToAddress("0x2000000000000000000000000000000000000002")
		s3     = common.HexToAddress("0x3000000000000000000000000000000000000003")
	)

	rotate, err := messages.RotateSigners(chaintest.Domain1, parent, []common.Address{s1}, []common.Address{s3}, 1)
	require.NoError(t, err)
	guard, err := messages.SetAdminGuard(chaintest.Domain1, parent, s1)
	require.NoError(t, err)
	execute, err := messages.NewExecute(chaintest.Domain1, parent, types.NewCall(s1, nil))
	require.NoError(t, err)

	tests := []struct {
		name          string
		msg           messages.Message
		wantSigners   []common.Address
		wantThreshold uint64
	}{
		{
			name:          "rotation",
			msg:           rotate,
			wantSigners:   []common.Address{s1, s2},
			wantThreshold: 1,
		},
		{
			name:          "other admin action",
			msg:           guard,
			wantSigners:   []common.Address{s2, s3},
			wantThreshold: 2,
		},
		{
			name:          "execute",
			msg:           execute,
			wantSigners:   []common.Address{s2, s3},
			wantThreshold: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signers, threshold, err := applyRotation(tt.msg, []common.Address{s2, s3}, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSigners, signers)
			assert.Equal(t, tt.wantThreshold, threshold)
		})
	}
}
