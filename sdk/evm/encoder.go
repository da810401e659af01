package evm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk/evm/bindings"
	"github.com/smartcontractkit/caravan/types"
)

// Encoder packs wallet calls into the calldata expected by the Caravan wallet contract.
type Encoder struct {
	caravan   *abi.ABI
	multicall *abi.ABI
}

// NewEncoder returns a new Encoder.
func NewEncoder() (*Encoder, error) {
	caravanABI, err := bindings.CaravanMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet ABI: %w", err)
	}

	multicallABI, err := bindings.Multicall3MetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse multicall ABI: %w", err)
	}

	return &Encoder{
		caravan:   caravanABI,
		multicall: multicallABI,
	}, nil
}

// PackModify packs a modify call.
func (e *Encoder) PackModify(action types.ActionType, data []byte, signatures []types.Signature) ([]byte, error) {
	return e.caravan.Pack("modify", new(big.Int).SetUint64(uint64(action)), data, transformSignatures(signatures))
}

// PackExecute packs an execute call.
func (e *Encoder) PackExecute(calls []types.Call, signatures []types.Signature) ([]byte, error) {
	return e.caravan.Pack("execute", transformCalls(calls), transformSignatures(signatures))
}

// PackTransition packs whichever call the transition describes.
func (e *Encoder) PackTransition(t types.Transition) ([]byte, error) {
	switch {
	case t.Modify != nil && t.Execute == nil:
		return e.PackModify(t.Modify.Action, t.Modify.Data, t.Signatures)
	case t.Modify == nil && t.Execute != nil:
		return e.PackExecute(t.Execute, t.Signatures)
	default:
		return nil, errors.New("transition must be exactly one of modify or execute")
	}
}

// PackApproved packs an approved(hash, signer) read.
func (e *Encoder) PackApproved(hash common.Hash, signer common.Address) ([]byte, error) {
	return e.caravan.Pack("approved", hash, signer)
}

// UnpackApproved decodes the result of an approved read.
func (e *Encoder) UnpackApproved(data []byte) (bool, error) {
	out, err := e.caravan.Unpack("approved", data)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// PackAggregate3 packs a Multicall3 aggregate3 call where every sub-call must succeed.
func (e *Encoder) PackAggregate3(target common.Address, calldata [][]byte) ([]bindings.Multicall3Call3, []byte, error) {
	calls := make([]bindings.Multicall3Call3, 0, len(calldata))
	for _, data := range calldata {
		calls = append(calls, bindings.Multicall3Call3{
			Target:       target,
			AllowFailure: false,
			CallData:     data,
		})
	}

	packed, err := e.multicall.Pack("aggregate3", calls)
	if err != nil {
		return nil, nil, err
	}

	return calls, packed, nil
}
