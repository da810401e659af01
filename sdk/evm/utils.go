package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk/evm/bindings"
	"github.com/smartcontractkit/caravan/types"
)

const (
	SignatureVOffset    = 27
	SignatureVThreshold = 2

	// SimulatedEVMChainID is the chain ID used for simulated chains.
	SimulatedEVMChainID = 1337
)

// Multicall3Address is the deterministic deployment address of Multicall3 on every EVM chain.
var Multicall3Address = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// transformSignatures transforms a slice of types.Signature into the r || s || v byte strings
// the wallet contract expects.
func transformSignatures(signatures []types.Signature) [][]byte {
	sigs := make([][]byte, 0, len(signatures))
	for _, sig := range signatures {
		sigs = append(sigs, toGethSignature(sig))
	}

	return sigs
}

// toGethSignature encodes a types.Signature with v in the 27/28 form.
func toGethSignature(s types.Signature) []byte {
	if s.V < SignatureVThreshold {
		s.V += SignatureVOffset
	}

	return s.ToBytes()
}

// transformCalls converts calls into their ABI struct form.
func transformCalls(calls []types.Call) []bindings.CaravanCall {
	out := make([]bindings.CaravanCall, 0, len(calls))
	for _, c := range calls {
		out = append(out, bindings.CaravanCall{
			Target:          c.Target,
			Value:           c.ValueOrZero(),
			SuccessRequired: c.SuccessRequired,
			Data:            c.Data,
		})
	}

	return out
}
