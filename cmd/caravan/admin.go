package caravan

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/queue"
)

// adminFlags are shared by every admin subcommand.
type adminFlags struct {
	parent string
}

func (f *adminFlags) stageOptions() ([]caravan.StageOption, error) {
	if f.parent == "" {
		return nil, nil
	}

	parent, err := parseHash(f.parent)
	if err != nil {
		return nil, err
	}

	return []caravan.StageOption{caravan.WithParent(parent)}, nil
}

func newAdminCmd(opts *options) *cobra.Command {
	flags := &adminFlags{}

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Queue administrative changes of the wallet",
	}
	cmd.PersistentFlags().StringVar(&flags.parent, "parent", "", "Queue the change after this message instead of the current head")

	cmd.AddCommand(
		newAdminRotateCmd(opts, flags),
		newAdminMigrateCmd(opts, flags),
		newAdminAddressCmd(opts, flags, "set-admin-guard <guard>", "Set the guard checked on admin changes",
			(*caravan.Wallet).SetAdminGuard),
		newAdminAddressCmd(opts, flags, "set-execute-guard <guard>", "Set the guard checked on executions",
			(*caravan.Wallet).SetExecuteGuard),
		newAdminAddressCmd(opts, flags, "enable-module <module>", "Enable a module",
			(*caravan.Wallet).EnableModule),
		newAdminAddressCmd(opts, flags, "disable-module <module>", "Disable a module",
			(*caravan.Wallet).DisableModule),
	)

	return cmd
}

func newAdminRotateCmd(opts *options, flags *adminFlags) *cobra.Command {
	var (
		add       []string
		remove    []string
		threshold uint64
	)

	cmd := &cobra.Command{
		Use:   "rotate-signers",
		Short: "Add and remove signers and change the threshold",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
			toAdd, err := parseAddresses(add)
			if err != nil {
				return err
			}
			toRemove, err := parseAddresses(remove)
			if err != nil {
				return err
			}
			stageOpts, err := flags.stageOptions()
			if err != nil {
				return err
			}

			item, err := s.wallet.RotateSigners(ctx, toAdd, toRemove, threshold, stageOpts...)

			return finishAdmin(ctx, cmd, s, item, err)
		}),
	}

	cmd.Flags().StringSliceVar(&add, "add", nil, "Signers to add")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "Signers to remove")
	cmd.Flags().Uint64Var(&threshold, "threshold", 0, "New threshold, 0 keeps the current one")

	return cmd
}

func newAdminMigrateCmd(opts *options, flags *adminFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <version>",
		Short: "Upgrade the wallet to a configured release",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			stageOpts, err := flags.stageOptions()
			if err != nil {
				return err
			}

			item, err := s.wallet.Migrate(ctx, args[0], stageOpts...)

			return finishAdmin(ctx, cmd, s, item, err)
		}),
	}
}

type addressAction func(w *caravan.Wallet, ctx context.Context, address common.Address, opts ...caravan.StageOption) (*queue.Item, error)

func newAdminAddressCmd(opts *options, flags *adminFlags, use, short string, action addressAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			stageOpts, err := flags.stageOptions()
			if err != nil {
				return err
			}

			item, err := action(s.wallet, ctx, address, stageOpts...)

			return finishAdmin(ctx, cmd, s, item, err)
		}),
	}
}

func finishAdmin(ctx context.Context, cmd *cobra.Command, s *session, item *queue.Item, err error) error {
	if err != nil {
		return err
	}

	if err := s.publish(ctx, item.Hash()); err != nil {
		return fmt.Errorf("failed to publish signature of %s: %w", item.Hash(), err)
	}

	return printItem(cmd.OutOrStdout(), item)
}

func parseAddresses(values []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(values))
	for _, v := range values {
		a, err := parseAddress(v)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
