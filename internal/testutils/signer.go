package testutils

import (
	"crypto/ecdsa"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/caravan/types"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// Sign signs hash directly, with v in its 0/1 form.
func (s *ECDSASigner) Sign(hash common.Hash) types.Signature {
	raw, err := crypto.Sign(hash.Bytes(), s.Key)
	if err != nil {
		panic(err)
	}

	sig, err := types.NewSignatureFromBytes(raw)
	if err != nil {
		panic(err)
	}

	return sig
}

// SignAll returns the signer to signature map of every signer over hash.
func SignAll(hash common.Hash, signers ...*ECDSASigner) map[common.Address]types.Signature {
	out := make(map[common.Address]types.Signature, len(signers))
	for _, s := range signers {
		out[s.Address()] = s.Sign(hash)
	}

	return out
}

func MakeNewECDSASigners(n int) []*ECDSASigner {
	signers := make([]*ECDSASigner, n)
	for i := range n {
		signers[i] = NewECDSASigner()
	}
	// Signers are sorted by address, the order the wallet expects
	slices.SortFunc(signers, func(a, b *ECDSASigner) int {
		return a.Address().Cmp(b.Address())
	})

	return signers
}
