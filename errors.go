package caravan

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoRelease is returned when migrating to a version with no known release address.
	ErrNoRelease = errors.New("no release deployed for version")

	// ErrInvalidRotation is returned when a signer rotation cannot be applied to the current
	// signer set.
	ErrInvalidRotation = errors.New("invalid signer rotation")
)

// StaleParentError is returned when a message does not build on the wallet's current head.
type StaleParentError struct {
	Expected common.Hash
	Actual   common.Hash
}

func (e *StaleParentError) Error() string {
	return fmt.Sprintf("stale parent: message builds on %s but head is %s", e.Actual, e.Expected)
}

func NewStaleParentError(expected, actual common.Hash) *StaleParentError {
	return &StaleParentError{Expected: expected, Actual: actual}
}

// InsufficientSignaturesError is returned when on-chain approvals and collected signatures do not
// reach the wallet threshold.
type InsufficientSignaturesError struct {
	Hash   common.Hash
	Needed int
}

func (e *InsufficientSignaturesError) Error() string {
	return fmt.Sprintf("not enough signatures for %s: need %d more", e.Hash, e.Needed)
}

func NewInsufficientSignaturesError(hash common.Hash, needed int) *InsufficientSignaturesError {
	return &InsufficientSignaturesError{Hash: hash, Needed: needed}
}
