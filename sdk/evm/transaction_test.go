package evm_test

import (
	"context"
	"math/big"
	"testing"

	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan/internal/testutils/evmsim"
	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/types"
)

func TestConfirmTransaction(t *testing.T) {
	t.Parallel()

	chain := evmsim.NewSimulatedChain(t, 1)
	tx := chain.Transfer(t, chain.Signers[0], signerA, big.NewInt(5))

	receipt, err := evm.ConfirmTransaction(context.Background(), chain.Backend.Client(), types.TransactionResult{
		Hash:           tx.Hash().Hex(),
		RawTransaction: tx,
	})
	require.NoError(t, err)
	assert.Equal(t, gethtypes.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, tx.Hash(), receipt.TxHash)
}

func TestConfirmTransaction_NotEVM(t *testing.T) {
	t.Parallel()

	_, err := evm.ConfirmTransaction(context.Background(), nil, types.TransactionResult{
		Hash:           "0x01",
		RawTransaction: "not a transaction",
	})
	require.ErrorContains(t, err, "does not hold an EVM transaction")
}
