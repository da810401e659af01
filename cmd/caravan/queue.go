package caravan

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/types"
)

func newQueueCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and act on queued messages",
	}

	cmd.AddCommand(
		newQueueListCmd(opts),
		newQueueShowCmd(opts),
		newQueueSignCmd(opts),
		newQueuePullCmd(opts),
		newQueueCommitCmd(opts),
		newQueueMergeCmd(opts),
		newQueueTransferCmd(opts),
		newQueueCallCmd(opts),
	)

	return cmd
}

// run connects before calling fn and disconnects after.
func (o *options) run(fn func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		s, err := o.connect(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := s.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		return fn(ctx, cmd, s, args)
	}
}

func newQueueListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued messages, marking those that build on the current head",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
			q, err := s.wallet.Queue(ctx)
			if err != nil {
				return err
			}

			return printItems(cmd.OutOrStdout(), q.Base(), q.Items())
		}),
	}
}

func newQueueShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <hash>",
		Short: "Show a queued message and its signers",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}

			q, err := s.wallet.Queue(ctx)
			if err != nil {
				return err
			}
			item, err := q.Find(hash)
			if err != nil {
				return err
			}

			return printItem(cmd.OutOrStdout(), item)
		}),
	}
}

func newQueueSignCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <hash>",
		Short: "Add signatures of the local and remote signers to a queued message",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}

			q, err := s.wallet.Queue(ctx)
			if err != nil {
				return err
			}
			item, err := q.Find(hash)
			if err != nil {
				return err
			}

			return stageAndPublish(ctx, cmd, s, item.Message())
		}),
	}
}

func newQueuePullCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Sign and queue every message the coordinator holds for the local signer",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, _ []string) error {
			if s.relay == nil {
				return fmt.Errorf("no coordinator, set --relay or %s", EnvRelayURL)
			}
			if s.signer == nil {
				return errors.New("no local signer configured")
			}

			address, err := s.signer.GetAddress()
			if err != nil {
				return err
			}

			pending, err := s.relay.Pending(ctx, address)
			if err != nil {
				return err
			}
			sdk.LoggerFrom(ctx).Infof("found %d messages to sign", len(pending))

			for _, msg := range pending {
				if err := stageAndPublish(ctx, cmd, s, msg); err != nil {
					return err
				}
			}

			return nil
		}),
	}
}

func newQueueCommitCmd(opts *options) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "commit <hash>",
		Short: "Submit a queued message that builds on the current head",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}

			result, err := s.wallet.CommitHash(ctx, hash)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction sent: %s\n", result.Hash)

			if noWait {
				return nil
			}

			return s.confirm(ctx, result)
		}),
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for the transaction to be mined")

	return cmd
}

func newQueueMergeCmd(opts *options) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "merge <hash>",
		Short: "Submit every queued message from the current head up to hash in one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}

			result, err := s.wallet.Merge(ctx, hash)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction sent: %s\n", result.Hash)

			if noWait {
				return nil
			}

			return s.confirm(ctx, result)
		}),
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for the transaction to be mined")

	return cmd
}

func newQueueTransferCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to> <amount-wei>",
		Short: "Queue a native token transfer",
		Args:  cobra.ExactArgs(2),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			to, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			builder, err := s.wallet.NewExecute(ctx)
			if err != nil {
				return err
			}
			if err := builder.AddTransfer(to, amount); err != nil {
				return err
			}

			return buildAndStage(ctx, cmd, s, builder)
		}),
	}
}

func newQueueCallCmd(opts *options) *cobra.Command {
	var (
		value        string
		allowFailure bool
		simulate     bool
	)

	cmd := &cobra.Command{
		Use:   "call <target> <calldata>",
		Short: "Queue a contract call",
		Args:  cobra.ExactArgs(2),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			target, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			data, err := hexutil.Decode(args[1])
			if err != nil {
				return fmt.Errorf("invalid calldata: %w", err)
			}
			amount, err := parseAmount(value)
			if err != nil {
				return err
			}

			builder, err := s.wallet.NewExecute(ctx)
			if err != nil {
				return err
			}

			call := types.Call{Target: target, Value: amount, SuccessRequired: !allowFailure, Data: data}
			if simulate {
				err = builder.AddFromSimulation(ctx, evm.NewSimulator(s.client), s.cfg.Address,
					func(ctx context.Context, session sdk.SimulationSession) error {
						_, err := session.Call(ctx, call)
						return err
					})
			} else {
				err = builder.AddCall(call)
			}
			if err != nil {
				return err
			}

			return buildAndStage(ctx, cmd, s, builder)
		}),
	}

	cmd.Flags().StringVar(&value, "value", "0", "Native value sent with the call, in wei")
	cmd.Flags().BoolVar(&allowFailure, "allow-failure", false, "Do not revert the batch if the call fails")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "Simulate the call as the wallet before queueing it")

	return cmd
}

func buildAndStage(ctx context.Context, cmd *cobra.Command, s *session, builder *messages.ExecuteBuilder) error {
	msg, err := builder.Build()
	if err != nil {
		return err
	}

	return stageAndPublish(ctx, cmd, s, msg)
}

// stageAndPublish stages msg, publishes the local signature and prints the queued item.
func stageAndPublish(ctx context.Context, cmd *cobra.Command, s *session, msg messages.Message) error {
	item, err := s.wallet.Stage(ctx, msg)
	if err != nil {
		return err
	}

	if err := s.publish(ctx, item.Hash()); err != nil {
		return fmt.Errorf("failed to publish signature of %s: %w", item.Hash(), err)
	}

	return printItem(cmd.OutOrStdout(), item)
}

func parseHash(s string) (common.Hash, error) {
	raw, err := hexutil.Decode(s)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%q is not a 32 byte hex hash", s)
	}

	return common.BytesToHash(raw), nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}

	return common.HexToAddress(s), nil
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("%q is not a non-negative integer amount", s)
	}

	return amount, nil
}
