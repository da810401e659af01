package evm_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/types"
)

func TestEncoder_Approved(t *testing.T) {
	t.Parallel()

	encoder, err := evm.NewEncoder()
	require.NoError(t, err)

	data, err := encoder.PackApproved(common.HexToHash("0x01"), signerA)
	require.NoError(t, err)
	assert.Len(t, data, 4+32+32)

	ok, err := encoder.UnpackApproved(common.LeftPadBytes([]byte{1}, 32))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = encoder.UnpackApproved([]byte{1})
	require.Error(t, err)
}

func TestEncoder_PackTransition(t *testing.T) {
	t.Parallel()

	encoder, err := evm.NewEncoder()
	require.NoError(t, err)

	data, err := types.EncodeAction(types.ActionConfigureModule, signerA, true)
	require.NoError(t, err)

	tests := []struct {
		name    string
		give    types.Transition
		wantErr string
	}{
		{
			name: "modify",
			give: types.Transition{Modify: &types.ModifyCall{Action: types.ActionConfigureModule, Data: data}},
		},
		{
			name: "execute",
			give: types.Transition{Execute: []types.Call{types.NewCall(signerB, nil)}},
		},
		{
			name:    "both",
			give:    types.Transition{Modify: &types.ModifyCall{}, Execute: []types.Call{}},
			wantErr: "transition must be exactly one of modify or execute",
		},
		{
			name:    "neither",
			give:    types.Transition{},
			wantErr: "transition must be exactly one of modify or execute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := encoder.PackTransition(tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}
