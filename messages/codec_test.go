package messages_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils/chaintest"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	rotate, err := messages.RotateSigners(chaintest.Domain1, parentHash, []common.Address{targetA}, []common.Address{targetB}, 2)
	require.NoError(t, err)

	execute, err := messages.NewExecute(chaintest.Domain1, parentHash,
		types.Call{Target: targetA, Value: big.NewInt(12), SuccessRequired: true, Data: []byte{0x01, 0x02}},
		types.Call{Target: targetB, Value: new(big.Int).Lsh(big.NewInt(1), 200), SuccessRequired: false, Data: []byte{0x03}},
	)
	require.NoError(t, err)

	for _, msg := range []messages.Message{rotate, execute} {
		raw, err := messages.Marshal(msg)
		require.NoError(t, err)

		decoded, err := messages.Unmarshal(chaintest.Domain1, raw)
		require.NoError(t, err)

		assert.Equal(t, msg.Hash(), decoded.Hash())
		assert.Equal(t, msg.Kind(), decoded.Kind())
		if diff := cmp.Diff(msg.Render(), decoded.Render(), cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })); diff != "" {
			t.Errorf("rendering differs after round trip (-want +got):\n%s", diff)
		}

		// The domain is not part of the encoding.
		other, err := messages.Unmarshal(chaintest.Domain2, raw)
		require.NoError(t, err)
		assert.NotEqual(t, msg.Hash(), other.Hash())
	}
}

func TestCodec_Format(t *testing.T) {
	t.Parallel()

	msg, err := messages.SetAdminGuard(chaintest.Domain1, parentHash, targetA)
	require.NoError(t, err)

	raw, err := messages.Marshal(msg)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, parentHash.Hex(), fields["parent"])
	assert.InDelta(t, float64(types.ActionSetAdminGuard), fields["action"], 0)
	assert.Contains(t, fields, "data")
}

func TestCodec_UnmarshalErrors(t *testing.T) {
	t.Parallel()

	parent := `"` + parentHash.Hex() + `"`
	call := `{"target":"` + targetA.Hex() + `","value":1,"success_required":true,"data":"0x"}`

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "not json", raw: `parent`},
		{name: "neither kind", raw: `{"parent":` + parent + `}`, wantErr: messages.ErrUnknownMessage},
		{name: "both kinds", raw: `{"parent":` + parent + `,"action":8,"data":"0x","calls":[]}`, wantErr: messages.ErrUnknownMessage},
		{name: "unknown modify field", raw: `{"parent":` + parent + `,"action":8,"data":"0x","nonce":1}`},
		{name: "missing modify field", raw: `{"parent":` + parent + `,"action":8}`},
		{name: "unknown action", raw: `{"parent":` + parent + `,"action":3,"data":"0x"}`, wantErr: types.ErrUnknownAction},
		{name: "missing parent", raw: `{"calls":[` + call + `]}`},
		{name: "unknown call field", raw: `{"parent":` + parent + `,"calls":[{"target":"` + targetA.Hex() + `","value":1,"success_required":true,"data":"0x","gas":1}]}`},
		{name: "missing call value", raw: `{"parent":` + parent + `,"calls":[{"target":"` + targetA.Hex() + `","success_required":true,"data":"0x"}]}`},
		{name: "too many calls", raw: `{"parent":` + parent + `,"calls":[` + call + `,` + call + `,` + call + `,` + call + `,` + call + `,` + call + `,` + call + `,` + call + `,` + call + `]}`, wantErr: messages.ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := messages.Unmarshal(chaintest.Domain1, []byte(tt.raw))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
