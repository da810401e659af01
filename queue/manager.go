// Package queue keeps the branching set of proposed wallet messages that have not been committed
// on chain yet, and persists it between runs.
package queue

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

var (
	// ErrDuplicateItem is returned when adding an item whose hash is already queued.
	ErrDuplicateItem = errors.New("item already in queue")

	// ErrUnknownParent is returned when adding an item whose parent is neither the base nor a
	// queued item.
	ErrUnknownParent = errors.New("unknown parent")

	// ErrNotFound is returned when a hash does not resolve to a queued item.
	ErrNotFound = errors.New("item not found")

	// ErrCorruptStore is returned when persisted data fails an integrity check.
	ErrCorruptStore = errors.New("corrupt queue store")
)

// Manager is a forest of queued items rooted at base, the last known on-chain head. Every item's
// parent is either base or another queued item.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	base     common.Hash
	items    map[common.Hash]*Item
	children map[common.Hash][]common.Hash
	// order is the insertion order of the queued items.
	order []common.Hash
	// removed holds items dropped since the last save, so the store can delete them.
	removed map[common.Hash]*Item
}

// NewManager returns an empty queue rooted at base.
func NewManager(base common.Hash) *Manager {
	return &Manager{
		base:     base,
		items:    make(map[common.Hash]*Item),
		children: make(map[common.Hash][]common.Hash),
		removed:  make(map[common.Hash]*Item),
	}
}

// Base returns the head the queue is rooted at.
func (m *Manager) Base() common.Hash {
	return m.base
}

// Size returns the number of queued items.
func (m *Manager) Size() int {
	return len(m.items)
}

// Contains reports whether hash is queued.
func (m *Manager) Contains(hash common.Hash) bool {
	_, ok := m.items[hash]
	return ok
}

// Add queues item. The queue is unchanged if an error is returned.
func (m *Manager) Add(item *Item) error {
	hash := item.Hash()
	if _, ok := m.items[hash]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, hash)
	}

	parent := item.Parent()
	if parent != m.base {
		if _, ok := m.items[parent]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownParent, parent)
		}
		m.children[parent] = append(m.children[parent], hash)
	}

	m.items[hash] = item
	m.children[hash] = nil
	m.order = append(m.order, hash)
	delete(m.removed, hash)

	return nil
}

// Find returns the queued item with hash.
func (m *Manager) Find(hash common.Hash) (*Item, error) {
	item, ok := m.items[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, hash)
	}

	return item, nil
}

// Parent returns the item that hash builds on. It fails with ErrNotFound if hash is not queued
// or its parent is the base.
func (m *Manager) Parent(hash common.Hash) (*Item, error) {
	item, err := m.Find(hash)
	if err != nil {
		return nil, err
	}

	return m.Find(item.Parent())
}

// Children returns the items building directly on hash, in insertion order.
func (m *Manager) Children(hash common.Hash) []*Item {
	if hashes, ok := m.children[hash]; ok {
		return m.resolve(hashes)
	}

	out := make([]*Item, 0)
	for _, h := range m.order {
		if item := m.items[h]; item.Parent() == hash {
			out = append(out, item)
		}
	}

	return out
}

// GetBranch returns the items from the base to head inclusive, oldest first. The branch is empty
// iff head is the base.
func (m *Manager) GetBranch(head common.Hash) ([]*Item, error) {
	branch := make([]*Item, 0)
	for current := head; current != m.base; {
		item, ok := m.items[current]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not reachable from %s", ErrNotFound, head, m.base)
		}
		branch = append(branch, item)
		current = item.Parent()
	}
	slices.Reverse(branch)

	return branch, nil
}

// AddConfirmations merges sigs into the queued item with hash.
func (m *Manager) AddConfirmations(hash common.Hash, sigs map[common.Address]types.Signature) error {
	item, err := m.Find(hash)
	if err != nil {
		return err
	}

	return item.AddConfirmations(sigs)
}

// Items returns every queued item in insertion order.
func (m *Manager) Items() []*Item {
	return m.resolve(m.order)
}

// Heads returns the queued items nothing builds on yet, in insertion order.
func (m *Manager) Heads() []*Item {
	out := make([]*Item, 0)
	for _, h := range m.order {
		if len(m.children[h]) == 0 {
			out = append(out, m.items[h])
		}
	}

	return out
}

// Rebase moves the base to newBase and returns the number of items pruned.
//
// When newBase is queued, the items on the branch leading to it are now on chain: they are
// removed without being counted, and newBase's children become roots. Every other item is
// pruned together with its subtree. When newBase is not queued, every item is pruned.
func (m *Manager) Rebase(newBase common.Hash) int {
	if newBase == m.base {
		return 0
	}

	adopted := make(map[common.Hash]bool)
	if branch, err := m.GetBranch(newBase); err == nil {
		for _, item := range branch {
			adopted[item.Hash()] = true
		}
	}

	dropped := 0
	stack := m.hashes(m.Children(m.base))
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case h == newBase:
			m.remove(h)
		case adopted[h]:
			stack = append(stack, m.children[h]...)
			m.remove(h)
		default:
			dropped += m.prune(h)
		}
	}

	m.base = newBase

	return dropped
}

// prune removes h and its subtree, returning how many items were removed.
func (m *Manager) prune(h common.Hash) int {
	count := 0
	stack := []common.Hash{h}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stack = append(stack, m.children[current]...)
		m.remove(current)
		count++
	}

	return count
}

// remove drops a single item. Its children are left in place.
func (m *Manager) remove(h common.Hash) {
	item, ok := m.items[h]
	if !ok {
		return
	}

	if kids, ok := m.children[item.Parent()]; ok {
		m.children[item.Parent()] = slices.DeleteFunc(kids, func(c common.Hash) bool { return c == h })
	}

	delete(m.items, h)
	delete(m.children, h)
	m.order = slices.DeleteFunc(m.order, func(c common.Hash) bool { return c == h })
	m.removed[h] = item
}

func (m *Manager) resolve(hashes []common.Hash) []*Item {
	out := make([]*Item, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, m.items[h])
	}

	return out
}

func (m *Manager) hashes(items []*Item) []common.Hash {
	out := make([]common.Hash, 0, len(items))
	for _, item := range items {
		out = append(out, item.Hash())
	}

	return out
}

// Save writes every queued item to store and deletes the items removed since the last save.
func (m *Manager) Save(ctx context.Context, store Store) error {
	removed := make([]*Item, 0, len(m.removed))
	for _, item := range m.removed {
		removed = append(removed, item)
	}

	if err := store.Save(ctx, m.Items(), removed); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}

	sdk.LoggerFrom(ctx).Debugf("saved %d queued items, deleted %d", m.Size(), len(removed))
	clear(m.removed)

	return nil
}

// Load rebuilds the queue rooted at base from store. Every persisted record is verified first;
// any integrity failure aborts the load with ErrCorruptStore. Records that do not descend from
// base are left in the store untouched.
func Load(ctx context.Context, base common.Hash, store Store) (*Manager, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Stores return records ordered by domain separator then hash, so reloaded siblings follow that order.
	byParent := make(map[common.Hash][]*Item)
	for _, item := range records {
		byParent[item.Parent()] = append(byParent[item.Parent()], item)
	}

	m := NewManager(base)
	frontier := []common.Hash{base}
	for len(frontier) > 0 {
		parent := frontier[0]
		frontier = frontier[1:]

		for _, item := range byParent[parent] {
			if err := m.Add(item); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
			}
			frontier = append(frontier, item.Hash())
		}
	}

	sdk.LoggerFrom(ctx).Debugf("loaded %d of %d stored items at base %s", m.Size(), len(records), base)

	return m, nil
}
