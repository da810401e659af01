package caravan_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/sdk/mocks"
	"github.com/smartcontractkit/caravan/types"
)

func TestWallet_RotateSigners_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		add       []int
		remove    []int
		threshold uint64
		wantErr   string
	}{
		{
			name:    "failure: remove a non-signer",
			remove:  []int{D},
			wantErr: "can't remove signers",
		},
		{
			name:    "failure: add an existing signer",
			add:     []int{B},
			wantErr: "can't add signers",
		},
		{
			name:      "failure: threshold above signer count",
			add:       []int{D},
			threshold: 5,
			wantErr:   "can't set threshold to 5, must be less than/equal to 4",
		},
		{
			name:    "failure: current threshold above remaining signers",
			remove:  []int{A, B},
			wantErr: "can't set threshold to 2, must be less than/equal to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, 2, A)

			_, err := f.wallet.RotateSigners(f.ctx, f.addr(tt.add...), f.addr(tt.remove...), tt.threshold)
			require.ErrorIs(t, err, caravan.ErrInvalidRotation)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWallet_RotateSigners_Helpers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2, A)

	tests := []struct {
		name          string
		stage         func() (messages.Message, error)
		wantAdd       []common.Address
		wantRemove    []common.Address
		wantThreshold int64
	}{
		{
			name: "add signers keeps threshold",
			stage: func() (messages.Message, error) {
				item, err := f.wallet.AddSigners(f.ctx, f.addr(D))
				if err != nil {
					return nil, err
				}

				return item.Message(), nil
			},
			wantAdd:       f.addr(D),
			wantThreshold: 2,
		},
		{
			name: "remove signers keeps threshold",
			stage: func() (messages.Message, error) {
				item, err := f.wallet.RemoveSigners(f.ctx, f.addr(C))
				if err != nil {
					return nil, err
				}

				return item.Message(), nil
			},
			wantRemove:    f.addr(C),
			wantThreshold: 2,
		},
		{
			name: "change threshold",
			stage: func() (messages.Message, error) {
				item, err := f.wallet.ChangeThreshold(f.ctx, 3)
				if err != nil {
					return nil, err
				}

				return item.Message(), nil
			},
			wantThreshold: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tt.stage()
			require.NoError(t, err)

			m, ok := msg.(*messages.Modify)
			require.True(t, ok)
			assert.Equal(t, types.ActionRotateSigners, m.Action())

			args, err := m.Args()
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantAdd, args[0])
			assert.ElementsMatch(t, tt.wantRemove, args[1])
			assert.Equal(t, big.NewInt(tt.wantThreshold), args[2])
		})
	}

	q, err := f.wallet.Queue(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Size())
}

func TestWallet_Migrate(t *testing.T) {
	t.Parallel()

	release := common.HexToAddress("0x1010000000000000000000000000000000000110")

	f := newFixture(t, 1)
	cfg := testConfig(f.dir)
	cfg.Releases = map[string]common.Address{"1.1.0": release}
	w := f.connect(t, cfg, caravan.WithSigners(f.signer(A)))

	_, err := w.Migrate(f.ctx, "2.0.0")
	require.ErrorIs(t, err, caravan.ErrNoRelease)

	item, err := w.Migrate(f.ctx, "1.1.0")
	require.NoError(t, err)
	assert.Equal(t, "modify/upgrade-implementation", item.MessageType())

	_, err = w.CommitHash(f.ctx, item.Hash())
	require.NoError(t, err)
	assert.Equal(t, release, f.ledger.Implementation())
}

func TestWallet_GuardsAndModules(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1, A)
	adminGuard := common.HexToAddress("0xad00000000000000000000000000000000000001")
	executeGuard := common.HexToAddress("0xe000000000000000000000000000000000000001")
	m1 := common.HexToAddress("0x1100000000000000000000000000000000000001")
	m2 := common.HexToAddress("0x1100000000000000000000000000000000000002")

	commit := func(item interface{ Hash() common.Hash }, err error) {
		t.Helper()

		require.NoError(t, err)
		_, err = f.wallet.CommitHash(f.ctx, item.Hash())
		require.NoError(t, err)
	}

	commit(f.wallet.SetAdminGuard(f.ctx, adminGuard))
	commit(f.wallet.SetExecuteGuard(f.ctx, executeGuard))
	commit(f.wallet.EnableModule(f.ctx, m1))
	commit(f.wallet.EnableModule(f.ctx, m2))

	modules, err := f.wallet.Modules(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{m1, m2}, modules)

	commit(f.wallet.DisableModule(f.ctx, m1))

	modules, err = f.wallet.Modules(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{m2}, modules)

	got, err := f.wallet.AdminGuard(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, adminGuard, got)

	got, err = f.wallet.ExecuteGuard(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, executeGuard, got)

	enabled, err := f.wallet.IsModuleEnabled(f.ctx, m1)
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = f.wallet.IsModuleEnabled(f.ctx, m2)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestWallet_NoModuleInspector(t *testing.T) {
	t.Parallel()

	w, err := caravan.NewWallet(testConfig(""), mocks.NewExecutor(t))
	require.NoError(t, err)

	ctx := testContext(t)

	_, err = w.AdminGuard(ctx)
	require.ErrorIs(t, err, caravan.ErrNoModuleInspector)

	_, err = w.ExecuteGuard(ctx)
	require.ErrorIs(t, err, caravan.ErrNoModuleInspector)

	_, err = w.Modules(ctx)
	require.ErrorIs(t, err, caravan.ErrNoModuleInspector)

	_, err = w.IsModuleEnabled(ctx, common.Address{})
	require.ErrorIs(t, err, caravan.ErrNoModuleInspector)
}

func TestWallet_WithModuleInspector(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewModuleInspector(t)
	inspector.EXPECT().GetAdminGuard(mock.Anything).Return(guard, nil)

	w, err := caravan.NewWallet(testConfig(""), mocks.NewExecutor(t), caravan.WithModuleInspector(inspector))
	require.NoError(t, err)

	got, err := w.AdminGuard(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, guard, got)
}
