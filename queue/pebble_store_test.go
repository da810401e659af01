package queue_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils"
	"github.com/smartcontractkit/caravan/queue"
)

func newMemPebbleStore(t *testing.T) *queue.PebbleStore {
	t.Helper()

	store, err := queue.OpenPebbleStore("queue", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestPebbleStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	signers := testutils.MakeNewECDSASigners(2)
	store := newMemPebbleStore(t)

	m := queue.NewManager(baseHash)
	a := newItem(t, baseHash, 1, signers...)
	b := newItem(t, a.Hash(), 2, signers[0])
	s := newItem(t, baseHash, 3)
	mustAdd(t, m, a, b, s)
	require.NoError(t, m.Save(ctx, store))

	loaded, err := queue.Load(ctx, baseHash, store)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Size())

	for _, want := range []*queue.Item{a, b, s} {
		got, err := loaded.Find(want.Hash())
		require.NoError(t, err)
		assert.Equal(t, want.Signatures().Map(), got.Signatures().Map())
	}

	// a lands on chain; s is pruned and both are deleted from the database.
	assert.Equal(t, 1, loaded.Rebase(a.Hash()))
	require.NoError(t, loaded.Save(ctx, store))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, hashesOf([]*queue.Item{b}), hashesOf(items))
}

func TestPebbleStore_Empty(t *testing.T) {
	t.Parallel()

	items, err := newMemPebbleStore(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
