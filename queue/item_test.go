package queue_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils"
	"github.com/smartcontractkit/caravan/internal/testutils/chaintest"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/types"
)

func TestNewItem(t *testing.T) {
	t.Parallel()

	signers := testutils.MakeNewECDSASigners(2)
	msg := newExecute(t, baseHash, 1)

	tests := []struct {
		name    string
		sigs    map[common.Address]types.Signature
		wantLen int
		wantErr bool
	}{
		{
			name:    "no signatures",
			sigs:    nil,
			wantLen: 0,
		},
		{
			name:    "valid signatures",
			sigs:    testutils.SignAll(msg.Hash(), signers...),
			wantLen: 2,
		},
		{
			name: "signature stored under another signer",
			sigs: map[common.Address]types.Signature{
				signers[1].Address(): signers[0].Sign(msg.Hash()),
			},
			wantErr: true,
		},
		{
			name: "signature over another hash",
			sigs: map[common.Address]types.Signature{
				signers[0].Address(): signers[0].Sign(common.HexToHash("0x01")),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := queue.NewItem(msg, tt.sigs)
			if tt.wantErr {
				var corrupt *types.CorruptSignatureError
				require.ErrorAs(t, err, &corrupt)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, msg.Hash(), item.Hash())
			assert.Equal(t, baseHash, item.Parent())
			assert.Equal(t, tt.wantLen, item.Confirmations())
		})
	}
}

func TestItem_MessageType(t *testing.T) {
	t.Parallel()

	rotate, err := messages.RotateSigners(chaintest.Domain1, baseHash, []common.Address{target}, nil, 1)
	require.NoError(t, err)

	modifyItem, err := queue.NewItem(rotate, nil)
	require.NoError(t, err)
	assert.Equal(t, "modify/rotate-signers", modifyItem.MessageType())

	executeItem := newItem(t, baseHash, 1)
	assert.Equal(t, "execute", executeItem.MessageType())
}

func TestItem_AddConfirmations(t *testing.T) {
	t.Parallel()

	signers := testutils.MakeNewECDSASigners(3)
	item := newItem(t, baseHash, 1, signers[0])
	hash := item.Hash()

	// Re-adding the same signature is a no-op.
	require.NoError(t, item.AddConfirmations(testutils.SignAll(hash, signers[0])))
	require.NoError(t, item.AddConfirmations(testutils.SignAll(hash, signers[0])))
	assert.Equal(t, 1, item.Confirmations())

	require.NoError(t, item.AddConfirmations(testutils.SignAll(hash, signers[1], signers[2])))
	assert.Equal(t, 3, item.Confirmations())
	assert.Equal(t, []common.Address{signers[0].Address(), signers[1].Address(), signers[2].Address()},
		item.Signatures().Signers())

	// A bad entry leaves the item unchanged even when other entries are valid.
	other := testutils.NewECDSASigner()
	err := item.AddConfirmations(map[common.Address]types.Signature{
		other.Address():      other.Sign(hash),
		signers[0].Address(): other.Sign(hash),
	})
	require.Error(t, err)
	assert.Equal(t, 3, item.Confirmations())
	assert.False(t, item.Signatures().Has(other.Address()))
}

func TestItem_SignaturesIsACopy(t *testing.T) {
	t.Parallel()

	signers := testutils.MakeNewECDSASigners(2)
	item := newItem(t, baseHash, 1, signers[0])

	sigs := item.Signatures()
	require.NoError(t, sigs.Add(signers[1].Address(), signers[1].Sign(item.Hash())))

	assert.Equal(t, 2, sigs.Len())
	assert.Equal(t, 1, item.Confirmations())
}
