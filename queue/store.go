package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

// Store persists queue items grouped by the domain separator of their message.
type Store interface {
	// Load returns every persisted item, verified. Any integrity failure is reported as
	// ErrCorruptStore and no items are returned.
	Load(ctx context.Context) ([]*Item, error)
	// Save writes items and deletes removed.
	Save(ctx context.Context, items []*Item, removed []*Item) error
}

// record is the decoded form of one persisted item, before verification.
type record struct {
	separator  common.Hash
	hash       common.Hash
	domain     types.Domain
	message    []byte
	signatures map[common.Address][]byte
}

// verify rebuilds the item from its persisted form and checks its integrity.
func (r record) verify() (*Item, error) {
	sep, err := r.domain.Separator()
	if err != nil {
		return nil, corruptf("domain %s: %v", r.separator, err)
	}
	if sep != r.separator {
		return nil, corruptf("domain stored under %s hashes to %s", r.separator, sep)
	}

	msg, err := messages.Unmarshal(r.domain, r.message)
	if err != nil {
		return nil, corruptf("message %s: %v", r.hash, err)
	}
	if msg.Hash() != r.hash {
		return nil, corruptf("message stored under %s hashes to %s", r.hash, msg.Hash())
	}

	sigs := make(map[common.Address]types.Signature, len(r.signatures))
	for signer, raw := range r.signatures {
		sig, err := types.NewSignatureFromBytes(raw)
		if err != nil {
			return nil, corruptf("signature of %s over %s: %v", signer, r.hash, err)
		}
		sigs[signer] = sig
	}

	item, err := NewItem(msg, sigs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	return item, nil
}

// verifyAll verifies every record in a stable order, failing on the first error.
func verifyAll(records []record) ([]*Item, error) {
	slices.SortFunc(records, func(a, b record) int {
		if c := bytes.Compare(a.separator.Bytes(), b.separator.Bytes()); c != 0 {
			return c
		}

		return bytes.Compare(a.hash.Bytes(), b.hash.Bytes())
	})

	items := make([]*Item, 0, len(records))
	for _, r := range records {
		item, err := r.verify()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func encodeDomain(d types.Domain) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func decodeDomain(raw []byte) (types.Domain, error) {
	var d types.Domain

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return types.Domain{}, err
	}

	return d, nil
}

// itemSeparator returns the domain separator an item is stored under.
func itemSeparator(item *Item) (common.Hash, error) {
	return item.Message().Domain().Separator()
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptStore, fmt.Sprintf(format, args...))
}
