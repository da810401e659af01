package caravan

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/caravan"
)

// walletInfo is the on-chain and queue state printed by info.
type walletInfo struct {
	Address   common.Address
	ChainID   uint64
	Version   string
	Head      common.Hash
	Threshold uint64
	Signers   []common.Address
	Local     []common.Address
	Modules   []common.Address
	Queued    int
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the wallet's on-chain configuration and queue size",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
			info, err := readInfo(ctx, s.cfg, s.wallet)
			if err != nil {
				return err
			}

			return printInfo(cmd.OutOrStdout(), info)
		}),
	}
}

func readInfo(ctx context.Context, cfg caravan.Config, w *caravan.Wallet) (walletInfo, error) {
	info := walletInfo{Address: cfg.Address, ChainID: cfg.ChainID}

	var err error
	if info.Version, err = w.Version(ctx); err != nil {
		return info, err
	}
	if info.Head, err = w.Head(ctx); err != nil {
		return info, err
	}
	if info.Threshold, err = w.Threshold(ctx); err != nil {
		return info, err
	}
	if info.Signers, err = w.Signers(ctx); err != nil {
		return info, err
	}

	local, err := w.LocalSigners(ctx)
	if err != nil {
		return info, err
	}
	for _, signer := range info.Signers {
		if _, ok := local[signer]; ok {
			info.Local = append(info.Local, signer)
		}
	}

	info.Modules, err = w.Modules(ctx)
	if err != nil && !errors.Is(err, caravan.ErrNoModuleInspector) {
		return info, err
	}

	q, err := w.Queue(ctx)
	if err != nil {
		return info, err
	}
	info.Queued = q.Size()

	return info, nil
}

func printInfo(w io.Writer, info walletInfo) error {
	_, err := fmt.Fprintf(w,
		"Wallet:    %s\nChain ID:  %d\nVersion:   %s\nHead:      %s\nThreshold: %d of %d\nSigners:   %s\nLocal:     %s\nModules:   %s\nQueued:    %d\n",
		info.Address.Hex(), info.ChainID, info.Version, info.Head.Hex(), info.Threshold, len(info.Signers),
		formatValue(info.Signers), formatValue(info.Local), formatValue(info.Modules), info.Queued,
	)

	return err
}
