// Package messages defines the two kinds of wallet state transitions, Modify and Execute, and
// their EIP-712 hashing.
package messages

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/caravan/types"
)

var (
	// ErrCapacityExceeded is returned when an Execute batch would exceed MaxCalls.
	ErrCapacityExceeded = errors.New("execute batch is full")

	// ErrPayloadTooLarge is returned when a call's data exceeds MaxCalldataSize.
	ErrPayloadTooLarge = errors.New("call data too large")
)

// Kind distinguishes the message variants.
type Kind string

const (
	KindModify  Kind = "modify"
	KindExecute Kind = "execute"
)

// Message is a proposed state transition of a wallet. It is immutable once built and identified
// by its EIP-712 hash. The only implementations are *Modify and *Execute.
type Message interface {
	// Parent is the wallet head the message expects to build on.
	Parent() common.Hash
	Domain() types.Domain
	// Hash is the EIP-712 digest signers sign over.
	Hash() common.Hash
	Kind() Kind
	// Title is a short human readable description.
	Title() string
	TypedData() apitypes.TypedData
	// SigningPayload returns 0x19 0x01 || domainSeparator || structHash.
	SigningPayload() []byte
	Render() []types.Field

	isMessage()
}

// digest holds the precomputed identity of a message.
type digest struct {
	hash    common.Hash
	payload []byte
}

func newDigest(td apitypes.TypedData) (digest, error) {
	hash, raw, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return digest{}, fmt.Errorf("failed to hash %s message: %w", td.PrimaryType, err)
	}

	return digest{
		hash:    common.BytesToHash(hash),
		payload: []byte(raw),
	}, nil
}

func (d digest) Hash() common.Hash {
	return d.hash
}

func (d digest) SigningPayload() []byte {
	return common.CopyBytes(d.payload)
}

func typesWith(extra apitypes.Types) apitypes.Types {
	t := apitypes.Types{types.EIP712DomainTypeName: types.EIP712DomainType}
	for name, fields := range extra {
		t[name] = fields
	}

	return t
}
