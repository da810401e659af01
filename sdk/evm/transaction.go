package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

// ErrTransactionReverted is returned when a submitted transaction was mined but failed.
var ErrTransactionReverted = errors.New("transaction reverted")

// ConfirmTransaction waits for the transaction in result to be mined and checks its status.
func ConfirmTransaction(ctx context.Context, client bind.DeployBackend, result types.TransactionResult) (*gethtypes.Receipt, error) {
	tx, ok := result.RawTransaction.(*gethtypes.Transaction)
	if !ok {
		return nil, fmt.Errorf("transaction result %s does not hold an EVM transaction", result.Hash)
	}

	sdk.LoggerFrom(ctx).Infof("waiting for transaction %s", result.Hash)

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", result.Hash, err)
	}

	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s in block %d", ErrTransactionReverted, result.Hash, receipt.BlockNumber)
	}

	return receipt, nil
}
