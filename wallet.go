// Package caravan is a client for Caravan multisig wallets. It keeps a queue of proposed wallet
// messages, collects signatures for them and submits them once they reach the wallet threshold.
package caravan

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/internal/utils/safecast"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/sdk"
	sdkerrors "github.com/smartcontractkit/caravan/sdk/errors"
	"github.com/smartcontractkit/caravan/types"
)

var (
	// ErrWrongDomain is returned for a message signed over another wallet's domain.
	ErrWrongDomain = errors.New("message belongs to another wallet")

	// ErrEmptyBranch is returned when merging up to the head the queue is already rooted at.
	ErrEmptyBranch = errors.New("nothing to merge")

	// ErrNoModuleInspector is returned by module and guard reads when the wallet has no
	// ModuleInspector.
	ErrNoModuleInspector = errors.New("wallet has no module inspector")
)

// Wallet is a client for one Caravan wallet deployment. It owns the wallet's queue and is its
// only writer.
//
// A Wallet is not safe for concurrent use.
type Wallet struct {
	cfg      Config
	domain   types.Domain
	executor sdk.Executor
	signers  []Signer
	store    queue.Store
	modules  *ModuleCache
	queue    *queue.Manager
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithSigners adds local signers. Only signers that are wallet signers on chain are asked to sign.
func WithSigners(signers ...Signer) Option {
	return func(w *Wallet) {
		w.signers = append(w.signers, signers...)
	}
}

// WithStore persists the queue in store instead of the file store at Config.QueueDir.
func WithStore(store queue.Store) Option {
	return func(w *Wallet) {
		w.store = store
	}
}

// WithModuleInspector reads module and guard configuration through inspector. Executors that
// also implement sdk.ModuleInspector are used by default.
func WithModuleInspector(inspector sdk.ModuleInspector) Option {
	return func(w *Wallet) {
		w.modules = NewModuleCache(inspector, 0)
	}
}

// NewWallet creates a client for the wallet described by cfg, reading and submitting through
// executor.
func NewWallet(cfg Config, executor sdk.Executor, opts ...Option) (*Wallet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	domain, err := cfg.Domain()
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		cfg:      cfg,
		domain:   domain,
		executor: executor,
	}

	if cfg.QueueDir != "" {
		w.store = queue.NewFileStore(cfg.QueueDir)
	}
	if inspector, ok := executor.(sdk.ModuleInspector); ok {
		w.modules = NewModuleCache(inspector, 0)
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Domain returns the wallet's signing domain.
func (w *Wallet) Domain() types.Domain {
	return w.domain
}

func (w *Wallet) Head(ctx context.Context) (common.Hash, error) {
	head, err := w.executor.GetHead(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read head: %w", err)
	}

	return head, nil
}

func (w *Wallet) Threshold(ctx context.Context) (uint64, error) {
	threshold, err := w.executor.GetThreshold(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read threshold: %w", err)
	}

	return threshold, nil
}

func (w *Wallet) Signers(ctx context.Context) ([]common.Address, error) {
	signers, err := w.executor.GetSigners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read signers: %w", err)
	}

	return signers, nil
}

// Version returns the version reported by the wallet implementation.
func (w *Wallet) Version(ctx context.Context) (string, error) {
	version, err := w.executor.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read version: %w", err)
	}

	return version, nil
}

// CheckVersion fails with an UnsupportedVersionError when the wallet implementation reports a
// version other than the configured one. Signatures over the configured domain would not verify
// on such a wallet.
func (w *Wallet) CheckVersion(ctx context.Context) error {
	version, err := w.Version(ctx)
	if err != nil {
		return err
	}
	if version != w.domain.Version {
		return sdkerrors.NewUnsupportedVersionError(version)
	}

	return nil
}

// LocalSigners returns the configured signers that are wallet signers on chain, keyed by address.
// Signers whose address cannot be read are skipped.
func (w *Wallet) LocalSigners(ctx context.Context) (map[common.Address]Signer, error) {
	onchain, err := w.Signers(ctx)
	if err != nil {
		return nil, err
	}

	local := make(map[common.Address]Signer)
	for _, s := range w.signers {
		address, err := s.GetAddress()
		if err != nil {
			sdk.LoggerFrom(ctx).Warnf("skipping local signer: %v", err)
			continue
		}
		if slices.Contains(onchain, address) {
			local[address] = s
		}
	}

	return local, nil
}

// OnchainApprovals returns the current signers that approved hash on chain.
func (w *Wallet) OnchainApprovals(ctx context.Context, hash common.Hash) ([]common.Address, error) {
	signers, err := w.Signers(ctx)
	if err != nil {
		return nil, err
	}

	return w.approvals(ctx, hash, signers)
}

func (w *Wallet) approvals(ctx context.Context, hash common.Hash, signers []common.Address) ([]common.Address, error) {
	approved, err := w.executor.GetApprovals(ctx, hash, signers)
	if err != nil {
		return nil, fmt.Errorf("failed to read approvals of %s: %w", hash, err)
	}

	return approved, nil
}

// Queue returns the wallet's queue rooted at the current head. The queue is loaded from the store
// on first use; when the head has moved since, the queue is rebased onto it and saved.
func (w *Wallet) Queue(ctx context.Context) (*queue.Manager, error) {
	head, err := w.Head(ctx)
	if err != nil {
		return nil, err
	}

	if w.queue == nil {
		if w.store == nil {
			w.queue = queue.NewManager(head)
			return w.queue, nil
		}

		q, err := queue.Load(ctx, head, w.store)
		if err != nil {
			return nil, err
		}
		w.queue = q

		return w.queue, nil
	}

	if w.queue.Base() != head {
		pruned := w.queue.Rebase(head)
		sdk.LoggerFrom(ctx).Infof("head moved to %s, pruned %d stale items", head, pruned)
		if err := w.persist(ctx); err != nil {
			return nil, err
		}
	}

	return w.queue, nil
}

func (w *Wallet) persist(ctx context.Context) error {
	if w.store == nil || w.cfg.Ephemeral {
		return nil
	}

	return w.queue.Save(ctx, w.store)
}

// CollectSignatures gathers off-chain signatures for msg until, together with the on-chain
// approvals, threshold distinct signers are reached. Signatures already in the queue are used
// before local signers are asked. Signers that approved on chain are never asked. A local signer
// that declines or fails is skipped.
func (w *Wallet) CollectSignatures(
	ctx context.Context, msg messages.Message, threshold uint64,
) (map[common.Address]types.Signature, error) {
	if err := w.checkDomain(msg); err != nil {
		return nil, err
	}

	lggr := sdk.LoggerFrom(ctx)
	hash := msg.Hash()

	approved, err := w.OnchainApprovals(ctx, hash)
	if err != nil {
		return nil, err
	}

	need, err := missing(threshold, len(approved))
	if err != nil {
		return nil, err
	}

	skip := make(map[common.Address]bool, len(approved))
	for _, a := range approved {
		skip[a] = true
	}

	collected := make(map[common.Address]types.Signature)

	q, err := w.Queue(ctx)
	if err != nil {
		return nil, err
	}
	if item, err := q.Find(hash); err == nil {
		sigs := item.Signatures()
		for _, signer := range sigs.Signers() {
			if len(collected) >= need {
				break
			}
			if skip[signer] {
				continue
			}
			collected[signer], _ = sigs.Get(signer)
			skip[signer] = true
		}
	}

	if len(collected) >= need {
		return collected, nil
	}

	local, err := w.LocalSigners(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]common.Address, 0, len(local))
	for address := range local {
		addresses = append(addresses, address)
	}
	slices.SortFunc(addresses, func(a, b common.Address) int { return a.Cmp(b) })

	for _, address := range addresses {
		if len(collected) >= need {
			break
		}
		if skip[address] {
			continue
		}

		sig, err := local[address].Sign(msg)
		if err != nil {
			lggr.Warnf("signer %s failed to sign %s: %v", address, hash, err)
			continue
		}
		if sig == nil {
			lggr.Infof("signer %s declined to sign %s", address, hash)
			continue
		}
		collected[address] = *sig
	}

	lggr.Debugf("collected %d signatures for %s, %d approvals on chain", len(collected), hash, len(approved))

	return collected, nil
}

// Stage collects signatures for msg and adds it to the queue, or adds the signatures to the queued
// item. The queue is saved unless the wallet is ephemeral.
func (w *Wallet) Stage(ctx context.Context, msg messages.Message) (*queue.Item, error) {
	threshold, err := w.Threshold(ctx)
	if err != nil {
		return nil, err
	}

	sigs, err := w.CollectSignatures(ctx, msg, threshold)
	if err != nil {
		return nil, err
	}

	q, err := w.Queue(ctx)
	if err != nil {
		return nil, err
	}

	var item *queue.Item
	if q.Contains(msg.Hash()) {
		if err := q.AddConfirmations(msg.Hash(), sigs); err != nil {
			return nil, err
		}
		item, err = q.Find(msg.Hash())
		if err != nil {
			return nil, err
		}
	} else {
		item, err = queue.NewItem(msg, sigs)
		if err != nil {
			return nil, err
		}
		if err := q.Add(item); err != nil {
			return nil, err
		}
	}

	if err := w.persist(ctx); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("staged %s %s with %d signatures", item.MessageType(), item.Hash(), item.Confirmations())

	return item, nil
}

// CommitHash commits the queued message with hash.
func (w *Wallet) CommitHash(ctx context.Context, hash common.Hash) (types.TransactionResult, error) {
	q, err := w.Queue(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	item, err := q.Find(hash)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return w.Commit(ctx, item.Message())
}

// Commit submits msg on chain with the signatures of its queue item. Only signatures of signers
// without an on-chain approval are sent, and no more than the threshold requires. On success the
// message becomes the head: the queue is rebased onto it and saved unless the wallet is
// ephemeral.
func (w *Wallet) Commit(ctx context.Context, msg messages.Message) (types.TransactionResult, error) {
	if err := w.checkDomain(msg); err != nil {
		return types.TransactionResult{}, err
	}

	head, err := w.Head(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if msg.Parent() != head {
		return types.TransactionResult{}, NewStaleParentError(head, msg.Parent())
	}

	threshold, err := w.Threshold(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}
	signers, err := w.Signers(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	q, err := w.Queue(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	var sigs *types.SignatureSet
	if item, err := q.Find(msg.Hash()); err == nil {
		sigs = item.Signatures()
	} else {
		sigs = types.NewSignatureSet(msg.Hash())
	}

	transition, err := w.transition(ctx, msg, sigs, signers, threshold)
	if err != nil {
		return types.TransactionResult{}, err
	}

	var result types.TransactionResult
	if transition.Modify != nil {
		result, err = w.executor.Modify(ctx, transition.Modify.Action, transition.Modify.Data, transition.Signatures)
	} else {
		result, err = w.executor.Execute(ctx, transition.Execute, transition.Signatures)
	}
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to submit %s: %w", msg.Hash(), err)
	}

	sdk.LoggerFrom(ctx).Infof("committed %s in transaction %s", msg.Hash(), result.Hash)

	if !w.cfg.Ephemeral {
		pruned := q.Rebase(msg.Hash())
		sdk.LoggerFrom(ctx).Debugf("rebased queue onto %s, pruned %d items", msg.Hash(), pruned)
		if err := w.persist(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Merge submits every queued message from the current head up to newHead in a single
// transaction. Each message is sent without signatures when its on-chain approvals reach the
// threshold, and with its queued signatures otherwise. If any message falls short nothing is
// submitted. Signer rotations earlier in the branch apply to the messages after them.
func (w *Wallet) Merge(ctx context.Context, newHead common.Hash) (types.TransactionResult, error) {
	q, err := w.Queue(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	branch, err := q.GetBranch(newHead)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if len(branch) == 0 {
		return types.TransactionResult{}, fmt.Errorf("%w: %s is the current head", ErrEmptyBranch, newHead)
	}

	threshold, err := w.Threshold(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}
	signers, err := w.Signers(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	transitions := make([]types.Transition, 0, len(branch))
	for _, item := range branch {
		transition, err := w.transition(ctx, item.Message(), item.Signatures(), signers, threshold)
		if err != nil {
			return types.TransactionResult{}, err
		}
		transitions = append(transitions, transition)

		signers, threshold, err = applyRotation(item.Message(), signers, threshold)
		if err != nil {
			return types.TransactionResult{}, err
		}
	}

	result, err := w.executor.Batch(ctx, transitions)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to submit merge up to %s: %w", newHead, err)
	}

	sdk.LoggerFrom(ctx).Infof("merged %d items up to %s in transaction %s", len(branch), newHead, result.Hash)

	if !w.cfg.Ephemeral {
		pruned := q.Rebase(newHead)
		sdk.LoggerFrom(ctx).Debugf("rebased queue onto %s, pruned %d items", newHead, pruned)
		if err := w.persist(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

// NewExecute returns a builder for an execute batch on top of the current head.
func (w *Wallet) NewExecute(ctx context.Context) (*messages.ExecuteBuilder, error) {
	head, err := w.Head(ctx)
	if err != nil {
		return nil, err
	}

	return messages.NewExecuteBuilder(w.domain, head), nil
}

// transition builds the on-chain call for msg given the signer set and threshold it will be
// checked against. Signatures are picked in ascending signer order among signers without an
// on-chain approval.
func (w *Wallet) transition(
	ctx context.Context,
	msg messages.Message,
	sigs *types.SignatureSet,
	signers []common.Address,
	threshold uint64,
) (types.Transition, error) {
	approved, err := w.approvals(ctx, msg.Hash(), signers)
	if err != nil {
		return types.Transition{}, err
	}

	need, err := missing(threshold, len(approved))
	if err != nil {
		return types.Transition{}, err
	}

	picked := make([]types.Signature, 0, need)
	for _, signer := range sigs.Signers() {
		if len(picked) >= need {
			break
		}
		if !slices.Contains(signers, signer) || slices.Contains(approved, signer) {
			continue
		}
		sig, _ := sigs.Get(signer)
		picked = append(picked, sig)
	}

	if len(picked) < need {
		return types.Transition{}, NewInsufficientSignaturesError(msg.Hash(), need-len(picked))
	}

	t := types.Transition{Signatures: picked}
	switch m := msg.(type) {
	case *messages.Modify:
		t.Modify = &types.ModifyCall{Action: m.Action(), Data: m.Data()}
	case *messages.Execute:
		t.Execute = m.Calls()
	}

	return t, nil
}

func (w *Wallet) checkDomain(msg messages.Message) error {
	if msg.Domain() != w.domain {
		return fmt.Errorf("%w: %s", ErrWrongDomain, msg.Domain())
	}

	return nil
}

// missing returns how many signatures are needed on top of have approvals.
func missing(threshold uint64, have int) (int, error) {
	t, err := safecast.Uint64ToInt(threshold)
	if err != nil {
		return 0, err
	}

	return max(t-have, 0), nil
}

// applyRotation returns the signer set and threshold in effect after msg.
func applyRotation(msg messages.Message, signers []common.Address, threshold uint64) ([]common.Address, uint64, error) {
	m, ok := msg.(*messages.Modify)
	if !ok || m.Action() != types.ActionRotateSigners {
		return signers, threshold, nil
	}

	args, err := m.Args()
	if err != nil {
		return nil, 0, err
	}

	if len(args) != 3 {
		return nil, 0, fmt.Errorf("rotate signers message %s: %d arguments, want 3", msg.Hash(), len(args))
	}

	add, _ := args[0].([]common.Address)
	remove, _ := args[1].([]common.Address)
	rawThreshold, ok := args[2].(*big.Int)
	if !ok {
		return nil, 0, fmt.Errorf("rotate signers message %s: threshold is %T, not *big.Int", msg.Hash(), args[2])
	}
	newThreshold, err := safecast.BigIntToUint64(rawThreshold)
	if err != nil {
		return nil, 0, err
	}

	next := slices.DeleteFunc(slices.Clone(signers), func(s common.Address) bool {
		return slices.Contains(remove, s)
	})
	next = append(next, add...)
	slices.SortFunc(next, func(a, b common.Address) int { return a.Cmp(b) })

	return next, newThreshold, nil
}
