package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/sdk"
)

var _ sdk.ModuleInspector = (*Inspector)(nil)

const moduleUpdatedEvent = "ModuleUpdated"

type moduleUpdated struct {
	Module  common.Address
	Enabled bool
}

// GetBlockNumber returns the latest block number.
func (e *Inspector) GetBlockNumber(ctx context.Context) (uint64, error) {
	header, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest header: %w", err)
	}

	return header.Number.Uint64(), nil
}

// GetModuleUpdates returns the ModuleUpdated events emitted by the wallet in blocks [from, to],
// in log order.
func (e *Inspector) GetModuleUpdates(ctx context.Context, from, to uint64) ([]sdk.ModuleUpdate, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{e.address},
		Topics:    [][]common.Hash{{e.caravan.Events[moduleUpdatedEvent].ID}},
	}

	logs, err := e.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs: %w", moduleUpdatedEvent, err)
	}

	updates := make([]sdk.ModuleUpdate, 0, len(logs))
	for _, lg := range logs {
		var ev moduleUpdated
		if err := e.contract.UnpackLog(&ev, moduleUpdatedEvent, lg); err != nil {
			return nil, fmt.Errorf("failed to unpack %s log: %w", moduleUpdatedEvent, err)
		}

		updates = append(updates, sdk.ModuleUpdate{
			Module:      ev.Module,
			Enabled:     ev.Enabled,
			BlockNumber: lg.BlockNumber,
			LogIndex:    lg.Index,
		})
	}

	return updates, nil
}

// IsModuleEnabled reads whether module is enabled on the wallet.
func (e *Inspector) IsModuleEnabled(ctx context.Context, module common.Address) (bool, error) {
	out, err := e.call(ctx, "module_enabled", module)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// GetAdminGuard returns the admin guard, or the zero address if none is set.
func (e *Inspector) GetAdminGuard(ctx context.Context) (common.Address, error) {
	return e.address0(ctx, "admin_guard")
}

// GetExecuteGuard returns the execute guard, or the zero address if none is set.
func (e *Inspector) GetExecuteGuard(ctx context.Context) (common.Address, error) {
	return e.address0(ctx, "execute_guard")
}

func (e *Inspector) address0(ctx context.Context, method string) (common.Address, error) {
	out, err := e.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
