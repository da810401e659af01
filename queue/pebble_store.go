package queue

import (
	"context"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

// Key prefixes. Every key below a prefix continues with the domain separator; message and
// signature keys then carry the message hash, and signature keys end with the signer address.
var (
	domainPrefix    = []byte("d/")
	messagePrefix   = []byte("m/")
	signaturePrefix = []byte("s/")
)

var _ Store = (*PebbleStore)(nil)

// PebbleStore persists the queue in a Pebble key-value database. Each save is a single synced
// batch, so a crash never leaves a partially written item.
type PebbleStore struct {
	db *pebble.DB
}

// OpenPebbleStore opens or creates the database at path. A nil opts uses Pebble's defaults.
func OpenPebbleStore(path string, opts *pebble.Options) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{
			Cache: pebble.NewCache(8 << 20), // 8 MB cache
		}
		defer opts.Cache.Unref()
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open queue database: %w", err)
	}

	return &PebbleStore{db: db}, nil
}

// Close closes the underlying database.
func (s *PebbleStore) Close() error {
	return s.db.Close()
}

// Load reads and verifies every stored item.
func (s *PebbleStore) Load(ctx context.Context) ([]*Item, error) {
	domains := make(map[common.Hash]types.Domain)
	err := s.iteratePrefix(domainPrefix, func(key, value []byte) error {
		if len(key) != common.HashLength {
			return corruptf("domain key of %d bytes", len(key))
		}

		d, err := decodeDomain(value)
		if err != nil {
			return corruptf("domain %x: %v", key, err)
		}
		domains[common.BytesToHash(key)] = d

		return nil
	})
	if err != nil {
		return nil, err
	}

	byKey := make(map[[2 * common.HashLength]byte]*record)
	err = s.iteratePrefix(messagePrefix, func(key, value []byte) error {
		if len(key) != 2*common.HashLength {
			return corruptf("message key of %d bytes", len(key))
		}

		sep := common.BytesToHash(key[:common.HashLength])
		domain, ok := domains[sep]
		if !ok {
			return corruptf("message %x has no domain", key[common.HashLength:])
		}

		byKey[[2 * common.HashLength]byte(key)] = &record{
			separator:  sep,
			hash:       common.BytesToHash(key[common.HashLength:]),
			domain:     domain,
			message:    copyBytes(value),
			signatures: make(map[common.Address][]byte),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.iteratePrefix(signaturePrefix, func(key, value []byte) error {
		if len(key) != 2*common.HashLength+common.AddressLength {
			return corruptf("signature key of %d bytes", len(key))
		}

		r, ok := byKey[[2 * common.HashLength]byte(key[:2*common.HashLength])]
		if !ok {
			return corruptf("signature %x has no message", key)
		}
		if len(value) != types.SignatureBytesLength {
			return corruptf("signature %x has %d bytes, want %d", key, len(value), types.SignatureBytesLength)
		}
		r.signatures[common.BytesToAddress(key[2*common.HashLength:])] = copyBytes(value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(byKey))
	for _, r := range byKey {
		records = append(records, *r)
	}

	return verifyAll(records)
}

// Save writes items and deletes removed in one synced batch.
func (s *PebbleStore) Save(ctx context.Context, items []*Item, removed []*Item) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	for _, item := range items {
		if err := putItem(batch, item); err != nil {
			return err
		}
	}

	for _, item := range removed {
		sep, err := itemSeparator(item)
		if err != nil {
			return err
		}

		id := itemKey(sep, item.Hash())
		if err := batch.Delete(withPrefix(messagePrefix, id), nil); err != nil {
			return err
		}

		sigs := withPrefix(signaturePrefix, id)
		if err := batch.DeleteRange(sigs, prefixUpperBound(sigs), nil); err != nil {
			return err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit queue batch: %w", err)
	}

	return nil
}

func putItem(batch *pebble.Batch, item *Item) error {
	domain := item.Message().Domain()
	sep, err := domain.Separator()
	if err != nil {
		return err
	}

	rawDomain, err := encodeDomain(domain)
	if err != nil {
		return err
	}
	if err := batch.Set(withPrefix(domainPrefix, sep.Bytes()), rawDomain, nil); err != nil {
		return err
	}

	rawMessage, err := messages.Marshal(item.Message())
	if err != nil {
		return err
	}

	id := itemKey(sep, item.Hash())
	if err := batch.Set(withPrefix(messagePrefix, id), rawMessage, nil); err != nil {
		return err
	}

	sigs := item.Signatures()
	for _, signer := range sigs.Signers() {
		sig, _ := sigs.Get(signer)
		key := withPrefix(signaturePrefix, append(id, signer.Bytes()...))
		if err := batch.Set(key, sig.ToBytes(), nil); err != nil {
			return err
		}
	}

	return nil
}

// iteratePrefix calls fn with every key below prefix, stripped of the prefix, in key order.
func (s *PebbleStore) iteratePrefix(prefix []byte, fn func(key, value []byte) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return err
		}

		if err := fn(iter.Key()[len(prefix):], value); err != nil {
			return err
		}
	}

	return iter.Error()
}

func itemKey(sep, hash common.Hash) []byte {
	key := make([]byte, 0, 2*common.HashLength)
	key = append(key, sep.Bytes()...)

	return append(key, hash.Bytes()...)
}

func withPrefix(prefix, key []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)

	return append(out, key...)
}

// prefixUpperBound computes the exclusive upper bound for a prefix scan. It returns nil when
// prefix is all 0xFF.
func prefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)

	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper
		}
	}

	return nil
}

// copyBytes copies a value out of an iterator, which reuses its buffers.
func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
