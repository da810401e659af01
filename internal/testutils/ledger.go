package testutils

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

var (
	_ sdk.Executor        = (*FakeWallet)(nil)
	_ sdk.ModuleInspector = (*FakeWallet)(nil)
)

// ErrReverted is returned by FakeWallet for every transition the contract would reject.
var ErrReverted = errors.New("execution reverted")

// FakeWallet is an in-memory wallet contract. Transitions must build on the head and carry
// enough approvals and signatures of current signers; on success the message hash becomes the
// head.
type FakeWallet struct {
	mu sync.Mutex

	domain  types.Domain
	state   walletState
	block   uint64
	updates []sdk.ModuleUpdate
	txs     int
}

type walletState struct {
	head           common.Hash
	threshold      uint64
	signers        []common.Address
	approved       map[common.Hash]map[common.Address]bool
	modules        map[common.Address]bool
	implementation common.Address
	adminGuard     common.Address
	executeGuard   common.Address
	executed       [][]types.Call
}

func (s walletState) clone() walletState {
	out := s
	out.signers = slices.Clone(s.signers)
	out.approved = make(map[common.Hash]map[common.Address]bool, len(s.approved))
	for h, m := range s.approved {
		out.approved[h] = maps.Clone(m)
	}
	out.modules = maps.Clone(s.modules)
	out.executed = slices.Clone(s.executed)

	return out
}

// NewFakeWallet returns a wallet for domain with the given signers and threshold.
func NewFakeWallet(domain types.Domain, head common.Hash, threshold uint64, signers ...common.Address) *FakeWallet {
	return &FakeWallet{
		domain: domain,
		state: walletState{
			head:      head,
			threshold: threshold,
			signers:   sortAddresses(slices.Clone(signers)),
			approved:  make(map[common.Hash]map[common.Address]bool),
			modules:   make(map[common.Address]bool),
		},
	}
}

// Approve records an on-chain approval of hash by signer.
func (w *FakeWallet) Approve(hash common.Hash, signer common.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.approved[hash] == nil {
		w.state.approved[hash] = make(map[common.Address]bool)
	}
	w.state.approved[hash][signer] = true
}

// SetHead moves the head, as if another client committed.
func (w *FakeWallet) SetHead(head common.Hash) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.head = head
}

// Transactions returns the number of successful transactions.
func (w *FakeWallet) Transactions() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.txs
}

// Executed returns the calls of every successful execute, in order.
func (w *FakeWallet) Executed() [][]types.Call {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.state.executed)
}

// Implementation returns the address of the last upgrade.
func (w *FakeWallet) Implementation() common.Address {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.implementation
}

func (w *FakeWallet) GetHead(context.Context) (common.Hash, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.head, nil
}

func (w *FakeWallet) GetThreshold(context.Context) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.threshold, nil
}

func (w *FakeWallet) GetSigners(context.Context) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.state.signers), nil
}

func (w *FakeWallet) IsApproved(_ context.Context, hash common.Hash, signer common.Address) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.approved[hash][signer], nil
}

func (w *FakeWallet) GetApprovals(_ context.Context, hash common.Hash, signers []common.Address) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]common.Address, 0)
	for _, s := range signers {
		if w.state.approved[hash][s] {
			out = append(out, s)
		}
	}

	return out, nil
}

func (w *FakeWallet) GetVersion(context.Context) (string, error) {
	return w.domain.Version, nil
}

func (w *FakeWallet) Modify(
	_ context.Context, action types.ActionType, data []byte, signatures []types.Signature,
) (types.TransactionResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	t := types.Transition{Modify: &types.ModifyCall{Action: action, Data: data}, Signatures: signatures}
	next, err := w.apply(w.state.clone(), t)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return w.commit(next), nil
}

func (w *FakeWallet) Execute(
	_ context.Context, calls []types.Call, signatures []types.Signature,
) (types.TransactionResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := w.apply(w.state.clone(), types.Transition{Execute: calls, Signatures: signatures})
	if err != nil {
		return types.TransactionResult{}, err
	}

	return w.commit(next), nil
}

// Batch applies every transition or none.
func (w *FakeWallet) Batch(_ context.Context, transitions []types.Transition) (types.TransactionResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.state.clone()
	for i, t := range transitions {
		var err error
		if next, err = w.apply(next, t); err != nil {
			return types.TransactionResult{}, fmt.Errorf("transition %d: %w", i, err)
		}
	}

	return w.commit(next), nil
}

func (w *FakeWallet) GetBlockNumber(context.Context) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.block, nil
}

func (w *FakeWallet) GetModuleUpdates(_ context.Context, from, to uint64) ([]sdk.ModuleUpdate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]sdk.ModuleUpdate, 0)
	for _, u := range w.updates {
		if u.BlockNumber >= from && u.BlockNumber <= to {
			out = append(out, u)
		}
	}

	return out, nil
}

func (w *FakeWallet) IsModuleEnabled(_ context.Context, module common.Address) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.modules[module], nil
}

func (w *FakeWallet) GetAdminGuard(context.Context) (common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.adminGuard, nil
}

func (w *FakeWallet) GetExecuteGuard(context.Context) (common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state.executeGuard, nil
}

// commit mines a block holding the transaction that produced next.
func (w *FakeWallet) commit(next walletState) types.TransactionResult {
	w.txs++
	w.block++

	for module, enabled := range next.modules {
		if !w.state.modules[module] && enabled {
			w.updates = append(w.updates, sdk.ModuleUpdate{Module: module, Enabled: true, BlockNumber: w.block})
		}
	}
	for module := range w.state.modules {
		if !next.modules[module] {
			w.updates = append(w.updates, sdk.ModuleUpdate{Module: module, Enabled: false, BlockNumber: w.block})
		}
	}
	w.state = next

	return types.TransactionResult{
		Hash: crypto.Keccak256Hash(big.NewInt(int64(w.txs)).Bytes()).Hex(),
	}
}

// apply checks t against s and returns the state after it.
func (w *FakeWallet) apply(s walletState, t types.Transition) (walletState, error) {
	var msg messages.Message
	var err error
	if t.Modify != nil {
		msg, err = messages.NewModify(w.domain, s.head, t.Modify.Action, t.Modify.Data)
	} else {
		msg, err = messages.NewExecute(w.domain, s.head, t.Execute...)
	}
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrReverted, err)
	}

	hash := msg.Hash()
	confirmed := make(map[common.Address]bool)
	for signer := range s.approved[hash] {
		if slices.Contains(s.signers, signer) {
			confirmed[signer] = true
		}
	}
	for _, sig := range t.Signatures {
		signer, err := sig.Recover(hash)
		if err != nil || !slices.Contains(s.signers, signer) || confirmed[signer] {
			return s, fmt.Errorf("%w: invalid signature", ErrReverted)
		}
		confirmed[signer] = true
	}
	if uint64(len(confirmed)) < s.threshold {
		return s, fmt.Errorf("%w: %d of %d signatures", ErrReverted, len(confirmed), s.threshold)
	}

	if m, ok := msg.(*messages.Modify); ok {
		if err := applyAction(&s, m); err != nil {
			return s, err
		}
	} else {
		s.executed = append(s.executed, t.Execute)
	}
	s.head = hash

	return s, nil
}

func applyAction(s *walletState, m *messages.Modify) error {
	args, err := m.Args()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReverted, err)
	}

	switch m.Action() {
	case types.ActionUpgradeImplementation:
		s.implementation = args[0].(common.Address)
	case types.ActionRotateSigners:
		add := args[0].([]common.Address)
		remove := args[1].([]common.Address)
		threshold := args[2].(*big.Int).Uint64()

		signers := slices.DeleteFunc(s.signers, func(a common.Address) bool { return slices.Contains(remove, a) })
		signers = sortAddresses(append(signers, add...))
		if threshold == 0 || threshold > uint64(len(signers)) {
			return fmt.Errorf("%w: threshold %d with %d signers", ErrReverted, threshold, len(signers))
		}
		s.signers = signers
		s.threshold = threshold
	case types.ActionConfigureModule:
		module := args[0].(common.Address)
		if args[1].(bool) {
			s.modules[module] = true
		} else {
			delete(s.modules, module)
		}
	case types.ActionSetAdminGuard:
		s.adminGuard = args[0].(common.Address)
	case types.ActionSetExecuteGuard:
		s.executeGuard = args[0].(common.Address)
	}

	return nil
}

func sortAddresses(addresses []common.Address) []common.Address {
	slices.SortFunc(addresses, func(a, b common.Address) int { return a.Cmp(b) })
	return addresses
}
