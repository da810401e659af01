package types

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// CorruptSignatureError is returned when a signature does not recover to the signer it is
// stored under.
type CorruptSignatureError struct {
	Hash      common.Hash
	Signer    common.Address
	Recovered common.Address
}

// NewCorruptSignatureError creates a new CorruptSignatureError.
func NewCorruptSignatureError(hash common.Hash, signer, recovered common.Address) *CorruptSignatureError {
	return &CorruptSignatureError{Hash: hash, Signer: signer, Recovered: recovered}
}

func (e *CorruptSignatureError) Error() string {
	return fmt.Sprintf("corrupt signature for %s: stored under signer %s but recovers to %s", e.Hash, e.Signer, e.Recovered)
}

// SignatureSet holds at most one signature per signer over a single message hash. Every entry
// is verified on insertion, so a set never holds a signature that recovers to another address.
type SignatureSet struct {
	hash common.Hash
	sigs map[common.Address]Signature
}

// NewSignatureSet creates an empty SignatureSet bound to the given message hash.
func NewSignatureSet(hash common.Hash) *SignatureSet {
	return &SignatureSet{
		hash: hash,
		sigs: make(map[common.Address]Signature),
	}
}

// NewSignatureSetFromMap creates a SignatureSet from a signer to signature mapping, verifying
// every entry. The first mismatch aborts construction.
func NewSignatureSetFromMap(hash common.Hash, sigs map[common.Address]Signature) (*SignatureSet, error) {
	set := NewSignatureSet(hash)
	for _, signer := range slices.SortedFunc(maps.Keys(sigs), compareAddresses) {
		if err := set.Add(signer, sigs[signer]); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Hash returns the message hash the signatures are over.
func (s *SignatureSet) Hash() common.Hash {
	return s.hash
}

// Add inserts the signature for signer, overwriting any previous one. Adding the same pair twice
// is a no-op.
func (s *SignatureSet) Add(signer common.Address, sig Signature) error {
	recovered, err := sig.Recover(s.hash)
	if err != nil {
		return fmt.Errorf("%w: %w", NewCorruptSignatureError(s.hash, signer, common.Address{}), err)
	}

	if recovered != signer {
		return NewCorruptSignatureError(s.hash, signer, recovered)
	}

	s.sigs[signer] = sig

	return nil
}

// Merge adds every signature of other into the set. other must be over the same hash.
func (s *SignatureSet) Merge(other *SignatureSet) error {
	if other == nil {
		return nil
	}

	if other.hash != s.hash {
		return fmt.Errorf("cannot merge signatures over %s into set over %s", other.hash, s.hash)
	}

	for signer, sig := range other.sigs {
		s.sigs[signer] = sig
	}

	return nil
}

// Verify recomputes signer recovery for every entry.
func (s *SignatureSet) Verify() bool {
	for signer, sig := range s.sigs {
		recovered, err := sig.Recover(s.hash)
		if err != nil || recovered != signer {
			return false
		}
	}

	return true
}

// Len returns the number of distinct signers.
func (s *SignatureSet) Len() int {
	return len(s.sigs)
}

// Get returns the signature stored for signer.
func (s *SignatureSet) Get(signer common.Address) (Signature, bool) {
	sig, ok := s.sigs[signer]
	return sig, ok
}

// Has reports whether signer has a signature in the set.
func (s *SignatureSet) Has(signer common.Address) bool {
	_, ok := s.sigs[signer]
	return ok
}

// Signers returns the signers in ascending address order.
func (s *SignatureSet) Signers() []common.Address {
	return slices.SortedFunc(maps.Keys(s.sigs), compareAddresses)
}

// Signatures returns the signatures ordered by ascending signer address.
func (s *SignatureSet) Signatures() []Signature {
	signers := s.Signers()
	out := make([]Signature, 0, len(signers))
	for _, signer := range signers {
		out = append(out, s.sigs[signer])
	}

	return out
}

// Map returns a copy of the signer to signature mapping.
func (s *SignatureSet) Map() map[common.Address]Signature {
	return maps.Clone(s.sigs)
}

// Clone returns a deep copy of the set.
func (s *SignatureSet) Clone() *SignatureSet {
	return &SignatureSet{
		hash: s.hash,
		sigs: maps.Clone(s.sigs),
	}
}

func compareAddresses(a, b common.Address) int {
	return a.Cmp(b)
}
