// Package bindings holds the contract ABIs the EVM SDK talks to.
package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CaravanMetaData contains the ABI of the Caravan wallet singleton, as seen through its proxy.
var CaravanMetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"VERSION","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
		{"type":"function","name":"head","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
		{"type":"function","name":"threshold","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"signers","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address[]"}]},
		{"type":"function","name":"approved","stateMutability":"view","inputs":[{"name":"msghash","type":"bytes32"},{"name":"signer","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","name":"module_enabled","stateMutability":"view","inputs":[{"name":"module","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","name":"admin_guard","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","name":"execute_guard","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","name":"modify","stateMutability":"nonpayable","inputs":[{"name":"action","type":"uint256"},{"name":"data","type":"bytes"},{"name":"signatures","type":"bytes[]"}],"outputs":[]},
		{"type":"function","name":"execute","stateMutability":"payable","inputs":[{"name":"calls","type":"tuple[]","components":[{"name":"target","type":"address"},{"name":"value","type":"uint256"},{"name":"success_required","type":"bool"},{"name":"data","type":"bytes"}]},{"name":"signatures","type":"bytes[]"}],"outputs":[]},
		{"type":"event","name":"ModuleUpdated","anonymous":false,"inputs":[{"name":"module","type":"address","indexed":true},{"name":"enabled","type":"bool","indexed":false}]}
	]`,
}

// Multicall3MetaData contains the subset of the Multicall3 ABI used for batching.
var Multicall3MetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"aggregate3","stateMutability":"payable","inputs":[{"name":"calls","type":"tuple[]","components":[{"name":"target","type":"address"},{"name":"allowFailure","type":"bool"},{"name":"callData","type":"bytes"}]}],"outputs":[{"name":"returnData","type":"tuple[]","components":[{"name":"success","type":"bool"},{"name":"returnData","type":"bytes"}]}]}
	]`,
}

// CaravanCall is the ABI form of a single execute call.
type CaravanCall struct {
	Target          common.Address
	Value           *big.Int
	SuccessRequired bool
	Data            []byte
}

// Multicall3Call3 is the ABI form of a Multicall3 aggregate3 call.
type Multicall3Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// Multicall3Result is the ABI form of a Multicall3 aggregate3 result.
type Multicall3Result struct {
	Success    bool
	ReturnData []byte
}
