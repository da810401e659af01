package caravan

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/caravan/sdk"
)

// options are the flags shared by every command.
type options struct {
	envFile  string
	rpcURL   string
	relayURL string
	store    string
	verbose  bool

	ledger         bool
	derivationPath string
	keystoreDir    string
	account        string
}

func BuildCaravanCmd() *cobra.Command {
	opts := &options{}

	cmd := cobra.Command{
		Use:          "caravan",
		Short:        "Manage the off-chain queue of a Caravan wallet",
		Long:         `Stage, sign and submit messages of a Caravan multisig wallet. The wallet is configured through CARAVAN_* variables, read from the environment or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := zapcore.InfoLevel
			if opts.verbose {
				level = zapcore.DebugLevel
			}
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			lggr, err := cfg.Build()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(sdk.WithLogger(ctx, lggr.Sugar()))

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env", ".env", "Path of the .env file holding the wallet configuration, empty to skip")
	flags.StringVar(&opts.rpcURL, "rpc", "", "RPC endpoint of the wallet's chain (default $"+EnvRPCURL+")")
	flags.StringVar(&opts.relayURL, "relay", "", "Signature coordinator to pull and publish signatures (default $"+EnvRelayURL+")")
	flags.StringVar(&opts.store, "store", storeFile, "Queue storage: file or pebble")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.ledger, "ledger", false, "Sign with a Ledger device")
	flags.StringVar(&opts.derivationPath, "derivationPath", "m/44'/60'/0'/0/0", "The derivation path for the ledger")
	flags.StringVar(&opts.keystoreDir, "keystore", "", "Sign with an account of this keystore directory")
	flags.StringVar(&opts.account, "account", "", "Address of the keystore account")

	cmd.AddCommand(newInfoCmd(opts))
	cmd.AddCommand(newQueueCmd(opts))
	cmd.AddCommand(newAdminCmd(opts))

	return &cmd
}
