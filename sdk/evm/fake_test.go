package evm_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/sdk/evm/bindings"
)

// fakeBackend answers eth_call for the wallet and Multicall3 from in-memory state. Methods not
// overridden here panic through the nil embedded interface.
type fakeBackend struct {
	evm.ContractDeployBackend

	caravan   *abi.ABI
	multicall *abi.ABI

	wallet     common.Address
	head       common.Hash
	threshold  int64
	signers    []common.Address
	approved   map[common.Address]bool
	version    string
	modules    map[common.Address]bool
	adminGuard common.Address
	block      int64
	logs       []gethtypes.Log

	multicallErr error

	mu          sync.Mutex
	singleCalls int
}

func newFakeBackend(t *testing.T, wallet common.Address) *fakeBackend {
	t.Helper()

	caravanABI, err := bindings.CaravanMetaData.GetAbi()
	require.NoError(t, err)
	multicallABI, err := bindings.Multicall3MetaData.GetAbi()
	require.NoError(t, err)

	return &fakeBackend{
		caravan:   caravanABI,
		multicall: multicallABI,
		wallet:    wallet,
		approved:  map[common.Address]bool{},
		modules:   map[common.Address]bool{},
	}
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if msg.To == nil {
		return nil, errors.New("contract creation not supported")
	}

	if *msg.To == evm.Multicall3Address {
		return f.aggregate3(msg.Data)
	}

	f.mu.Lock()
	f.singleCalls++
	f.mu.Unlock()

	return f.callWallet(msg.Data)
}

func (f *fakeBackend) HeaderByNumber(_ context.Context, _ *big.Int) (*gethtypes.Header, error) {
	return &gethtypes.Header{Number: big.NewInt(f.block)}, nil
}

func (f *fakeBackend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error) {
	out := make([]gethtypes.Log, 0, len(f.logs))
	for _, lg := range f.logs {
		if lg.BlockNumber < q.FromBlock.Uint64() || lg.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		out = append(out, lg)
	}

	return out, nil
}

func (f *fakeBackend) callWallet(data []byte) ([]byte, error) {
	method, err := f.caravan.MethodById(data[:4])
	if err != nil {
		return nil, err
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "head":
		return method.Outputs.Pack([32]byte(f.head))
	case "threshold":
		return method.Outputs.Pack(big.NewInt(f.threshold))
	case "signers":
		return method.Outputs.Pack(f.signers)
	case "approved":
		signer := *abi.ConvertType(args[1], new(common.Address)).(*common.Address)
		return method.Outputs.Pack(f.approved[signer])
	case "VERSION":
		return method.Outputs.Pack(f.version)
	case "module_enabled":
		module := *abi.ConvertType(args[0], new(common.Address)).(*common.Address)
		return method.Outputs.Pack(f.modules[module])
	case "admin_guard":
		return method.Outputs.Pack(f.adminGuard)
	case "execute_guard":
		return method.Outputs.Pack(common.Address{})
	default:
		return nil, errors.New("unsupported method " + method.Name)
	}
}

func (f *fakeBackend) aggregate3(data []byte) ([]byte, error) {
	if f.multicallErr != nil {
		return nil, f.multicallErr
	}

	method, err := f.multicall.MethodById(data[:4])
	if err != nil {
		return nil, err
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}

	calls := *abi.ConvertType(args[0], new([]bindings.Multicall3Call3)).(*[]bindings.Multicall3Call3)
	results := make([]bindings.Multicall3Result, 0, len(calls))
	for _, c := range calls {
		if c.Target != f.wallet {
			return nil, errors.New("unexpected multicall target")
		}

		out, err := f.callWallet(c.CallData)
		if err != nil {
			return nil, err
		}
		results = append(results, bindings.Multicall3Result{Success: true, ReturnData: out})
	}

	return method.Outputs.Pack(results)
}
