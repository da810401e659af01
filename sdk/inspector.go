package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Inspector is an interface for inspecting on chain state of a Caravan wallet.
type Inspector interface {
	// GetHead returns the wallet's current state hash.
	GetHead(ctx context.Context) (common.Hash, error)
	GetThreshold(ctx context.Context) (uint64, error)
	GetSigners(ctx context.Context) ([]common.Address, error)
	IsApproved(ctx context.Context, hash common.Hash, signer common.Address) (bool, error)
	// GetApprovals returns the subset of signers that approved hash on chain.
	GetApprovals(ctx context.Context, hash common.Hash, signers []common.Address) ([]common.Address, error)
	GetVersion(ctx context.Context) (string, error)
}

// ModuleInspector reads module and guard configuration of a wallet.
type ModuleInspector interface {
	GetBlockNumber(ctx context.Context) (uint64, error)
	// GetModuleUpdates returns the module enable/disable events emitted in [from, to].
	GetModuleUpdates(ctx context.Context, from, to uint64) ([]ModuleUpdate, error)
	IsModuleEnabled(ctx context.Context, module common.Address) (bool, error)
	GetAdminGuard(ctx context.Context) (common.Address, error)
	GetExecuteGuard(ctx context.Context) (common.Address, error)
}

// ModuleUpdate is a single module configuration change.
type ModuleUpdate struct {
	Module      common.Address
	Enabled     bool
	BlockNumber uint64
	LogIndex    uint
}
