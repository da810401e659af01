package caravan

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk"
)

// ModuleCache tracks the wallet's enabled modules by replaying module update events. Each
// refresh only reads the blocks after the last synced one.
type ModuleCache struct {
	inspector  sdk.ModuleInspector
	modules    map[common.Address]bool
	startBlock uint64
	lastSynced uint64
	synced     bool
}

// NewModuleCache returns an empty cache that starts replaying events at startBlock, usually the
// wallet's deployment block.
func NewModuleCache(inspector sdk.ModuleInspector, startBlock uint64) *ModuleCache {
	return &ModuleCache{
		inspector:  inspector,
		modules:    make(map[common.Address]bool),
		startBlock: startBlock,
	}
}

// Refresh applies the module updates emitted up to block upTo inclusive.
func (c *ModuleCache) Refresh(ctx context.Context, upTo uint64) error {
	from := c.startBlock
	if c.synced {
		from = c.lastSynced + 1
	}
	if from > upTo {
		return nil
	}

	updates, err := c.inspector.GetModuleUpdates(ctx, from, upTo)
	if err != nil {
		return fmt.Errorf("failed to read module updates in [%d, %d]: %w", from, upTo, err)
	}

	slices.SortStableFunc(updates, func(a, b sdk.ModuleUpdate) int {
		if n := cmp.Compare(a.BlockNumber, b.BlockNumber); n != 0 {
			return n
		}

		return cmp.Compare(a.LogIndex, b.LogIndex)
	})

	for _, u := range updates {
		if u.Enabled {
			c.modules[u.Module] = true
		} else {
			delete(c.modules, u.Module)
		}
	}

	c.lastSynced = upTo
	c.synced = true

	sdk.LoggerFrom(ctx).Debugf("applied %d module updates up to block %d", len(updates), upTo)

	return nil
}

// LastSynced returns the last block applied, and false before the first refresh.
func (c *ModuleCache) LastSynced() (uint64, bool) {
	return c.lastSynced, c.synced
}

// Enabled returns the cached enabled modules sorted by address.
func (c *ModuleCache) Enabled() []common.Address {
	out := make([]common.Address, 0, len(c.modules))
	for m := range c.modules {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b common.Address) int { return a.Cmp(b) })

	return out
}

// Contains reports whether module is enabled. Modules missing from the cache are checked on chain.
func (c *ModuleCache) Contains(ctx context.Context, module common.Address) (bool, error) {
	if c.modules[module] {
		return true, nil
	}

	enabled, err := c.inspector.IsModuleEnabled(ctx, module)
	if err != nil {
		return false, fmt.Errorf("failed to read module %s: %w", module, err)
	}

	return enabled, nil
}
