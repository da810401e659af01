// Package chaintest holds chain and wallet fixtures shared by tests.
package chaintest

import (
	"github.com/ethereum/go-ethereum/common"
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/caravan/types"
)

const WalletVersion = "1.0.0"

var (
	Chain1EVMID = cselectors.GETH_TESTNET.EvmChainID             // 1337
	Chain2EVMID = cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID // 11155111

	Wallet1 = common.HexToAddress("0xCA7A000000000000000000000000000000000001")
	Wallet2 = common.HexToAddress("0xCA7A000000000000000000000000000000000002")

	// Domain1 is the domain of Wallet1 on Chain1.
	Domain1 = types.Domain{
		Name:              types.DefaultDomainName,
		Version:           WalletVersion,
		ChainID:           Chain1EVMID,
		VerifyingContract: Wallet1,
	}

	// Domain2 is the domain of Wallet2 on Chain2.
	Domain2 = types.Domain{
		Name:              types.DefaultDomainName,
		Version:           WalletVersion,
		ChainID:           Chain2EVMID,
		VerifyingContract: Wallet2,
	}
)
