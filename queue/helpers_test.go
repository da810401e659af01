package queue_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils"
	"github.com/smartcontractkit/caravan/internal/testutils/chaintest"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/types"
)

var (
	baseHash = common.HexToHash("0xba5e")
	target   = common.HexToAddress("0x5167000000000000000000000000000000000a0a")
)

// newExecute returns an execute message building on parent. Different tags give different hashes.
func newExecute(t *testing.T, parent common.Hash, tag byte) messages.Message {
	t.Helper()

	msg, err := messages.NewExecute(chaintest.Domain1, parent, types.NewCall(target, []byte{tag}))
	require.NoError(t, err)

	return msg
}

// newItem returns a queue item building on parent, signed by signers.
func newItem(t *testing.T, parent common.Hash, tag byte, signers ...*testutils.ECDSASigner) *queue.Item {
	t.Helper()

	msg := newExecute(t, parent, tag)
	item, err := queue.NewItem(msg, testutils.SignAll(msg.Hash(), signers...))
	require.NoError(t, err)

	return item
}

func mustAdd(t *testing.T, m *queue.Manager, items ...*queue.Item) {
	t.Helper()

	for _, item := range items {
		require.NoError(t, m.Add(item))
	}
}

func hashesOf(items []*queue.Item) []common.Hash {
	out := make([]common.Hash, 0, len(items))
	for _, item := range items {
		out = append(out, item.Hash())
	}

	return out
}
