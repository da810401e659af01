package caravan

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/types"
)

type stageOptions struct {
	parent *common.Hash
}

// StageOption configures how an administrative message is built.
type StageOption func(*stageOptions)

// WithParent builds the message on top of parent instead of the current head, usually a queued
// item.
func WithParent(parent common.Hash) StageOption {
	return func(o *stageOptions) {
		o.parent = &parent
	}
}

func (w *Wallet) parent(ctx context.Context, opts []StageOption) (common.Hash, error) {
	o := stageOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.parent != nil {
		return *o.parent, nil
	}

	return w.Head(ctx)
}

// stageModify builds a Modify with build on the resolved parent and stages it.
func (w *Wallet) stageModify(
	ctx context.Context,
	opts []StageOption,
	build func(domain types.Domain, parent common.Hash) (*messages.Modify, error),
) (*queue.Item, error) {
	parent, err := w.parent(ctx, opts)
	if err != nil {
		return nil, err
	}

	msg, err := build(w.domain, parent)
	if err != nil {
		return nil, err
	}

	return w.Stage(ctx, msg)
}

// Migrate stages an upgrade to the release of version.
func (w *Wallet) Migrate(ctx context.Context, version string, opts ...StageOption) (*queue.Item, error) {
	release, ok := w.cfg.Releases[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRelease, version)
	}

	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.UpgradeImplementation(domain, parent, release)
	})
}

// RotateSigners stages a change of the signer set. Signers to remove must be current signers and
// signers to add must not be. A zero threshold keeps the current one; otherwise it may not exceed
// the size of the resulting signer set.
func (w *Wallet) RotateSigners(
	ctx context.Context, add, remove []common.Address, threshold uint64, opts ...StageOption,
) (*queue.Item, error) {
	signers, err := w.Signers(ctx)
	if err != nil {
		return nil, err
	}

	if invalid := notIn(remove, signers); len(invalid) > 0 {
		return nil, fmt.Errorf("%w: can't remove signers: %s", ErrInvalidRotation, joinAddresses(invalid))
	}
	if invalid := in(add, signers); len(invalid) > 0 {
		return nil, fmt.Errorf("%w: can't add signers: %s", ErrInvalidRotation, joinAddresses(invalid))
	}

	if threshold == 0 {
		threshold, err = w.Threshold(ctx)
		if err != nil {
			return nil, err
		}
	}

	maxThreshold := len(signers) + len(add) - len(remove)
	if maxThreshold < 0 || threshold > uint64(maxThreshold) {
		return nil, fmt.Errorf(
			"%w: can't set threshold to %d, must be less than/equal to %d", ErrInvalidRotation, threshold, maxThreshold,
		)
	}

	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.RotateSigners(domain, parent, add, remove, threshold)
	})
}

func (w *Wallet) AddSigners(ctx context.Context, signers []common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.RotateSigners(ctx, signers, nil, 0, opts...)
}

func (w *Wallet) RemoveSigners(ctx context.Context, signers []common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.RotateSigners(ctx, nil, signers, 0, opts...)
}

func (w *Wallet) ChangeThreshold(ctx context.Context, threshold uint64, opts ...StageOption) (*queue.Item, error) {
	return w.RotateSigners(ctx, nil, nil, threshold, opts...)
}

// SetAdminGuard stages a new admin guard. The zero address removes the guard.
func (w *Wallet) SetAdminGuard(ctx context.Context, guard common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.SetAdminGuard(domain, parent, guard)
	})
}

// SetExecuteGuard stages a new execute guard. The zero address removes the guard.
func (w *Wallet) SetExecuteGuard(ctx context.Context, guard common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.SetExecuteGuard(domain, parent, guard)
	})
}

func (w *Wallet) EnableModule(ctx context.Context, module common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.ConfigureModule(domain, parent, module, true)
	})
}

func (w *Wallet) DisableModule(ctx context.Context, module common.Address, opts ...StageOption) (*queue.Item, error) {
	return w.stageModify(ctx, opts, func(domain types.Domain, parent common.Hash) (*messages.Modify, error) {
		return messages.ConfigureModule(domain, parent, module, false)
	})
}

// AdminGuard returns the admin guard, or the zero address if none is set.
func (w *Wallet) AdminGuard(ctx context.Context) (common.Address, error) {
	if w.modules == nil {
		return common.Address{}, ErrNoModuleInspector
	}

	return w.modules.inspector.GetAdminGuard(ctx)
}

// ExecuteGuard returns the execute guard, or the zero address if none is set.
func (w *Wallet) ExecuteGuard(ctx context.Context) (common.Address, error) {
	if w.modules == nil {
		return common.Address{}, ErrNoModuleInspector
	}

	return w.modules.inspector.GetExecuteGuard(ctx)
}

// Modules returns the enabled modules, syncing the module cache up to the latest block.
func (w *Wallet) Modules(ctx context.Context) ([]common.Address, error) {
	if w.modules == nil {
		return nil, ErrNoModuleInspector
	}

	latest, err := w.modules.inspector.GetBlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	if err := w.modules.Refresh(ctx, latest); err != nil {
		return nil, err
	}

	return w.modules.Enabled(), nil
}

// IsModuleEnabled reports whether module is enabled, from the cache or else from chain.
func (w *Wallet) IsModuleEnabled(ctx context.Context, module common.Address) (bool, error) {
	if w.modules == nil {
		return false, ErrNoModuleInspector
	}

	return w.modules.Contains(ctx, module)
}

func in(addresses, set []common.Address) []common.Address {
	return slices.DeleteFunc(slices.Clone(addresses), func(a common.Address) bool {
		return !slices.Contains(set, a)
	})
}

func notIn(addresses, set []common.Address) []common.Address {
	return slices.DeleteFunc(slices.Clone(addresses), func(a common.Address) bool {
		return slices.Contains(set, a)
	})
}

func joinAddresses(addresses []common.Address) string {
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, a.Hex())
	}

	return strings.Join(out, ", ")
}
