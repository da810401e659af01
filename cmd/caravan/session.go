package caravan

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/relay"
	"github.com/smartcontractkit/caravan/sdk"
	sdkerrors "github.com/smartcontractkit/caravan/sdk/errors"
	"github.com/smartcontractkit/caravan/sdk/evm"
	"github.com/smartcontractkit/caravan/types"
)

// Environment variables read by the CLI on top of the wallet configuration.
const (
	EnvRPCURL           = "CARAVAN_RPC_URL"
	EnvRelayURL         = "CARAVAN_RELAY_URL"
	EnvPrivateKey       = "CARAVAN_PRIVATE_KEY"
	EnvKeystorePassword = "CARAVAN_KEYSTORE_PASSWORD"
)

const (
	storeFile   = "file"
	storePebble = "pebble"

	defaultEnvFile = ".env"
)

var errNoTransactor = errors.New(EnvPrivateKey + " is required to send transactions")

// session is a connected wallet client.
type session struct {
	cfg    caravan.Config
	client *ethclient.Client
	wallet *caravan.Wallet

	// signer is the configured local signer, nil if none.
	signer caravan.Signer
	// relay is nil without a coordinator.
	relay *relay.Client

	closers []func() error
}

func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}

	return errors.Join(errs...)
}

// connect loads the configuration and connects to the wallet. Remote signers of the coordinator
// are added for every wallet signer other than the local one.
func (o *options) connect(ctx context.Context) (*session, error) {
	cfg, err := caravan.LoadConfig(o.resolveEnvFile())
	if err != nil {
		return nil, err
	}

	rpcURL := valueOrEnv(o.rpcURL, EnvRPCURL)
	if rpcURL == "" {
		return nil, fmt.Errorf("no RPC endpoint, set --rpc or %s", EnvRPCURL)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	s := &session{cfg: cfg, client: client}
	s.closers = append(s.closers, func() error { client.Close(); return nil })

	if err := o.setup(ctx, s); err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

// verify checks that the endpoint serves the configured chain and wallet version.
func (s *session) verify(ctx context.Context) error {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read chain id: %w", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != s.cfg.ChainID {
		return sdkerrors.NewInvalidChainIDError(chainID.Uint64())
	}

	return s.wallet.CheckVersion(ctx)
}

func (o *options) setup(ctx context.Context, s *session) error {
	auth, err := loadTransactor(s.cfg.ChainID)
	if err != nil && !errors.Is(err, errNoTransactor) {
		return err
	}

	executor, err := evm.NewExecutor(s.client, s.cfg.Address, auth)
	if err != nil {
		return err
	}

	walletOpts := make([]caravan.Option, 0)

	store, closeStore, err := o.openStore(s.cfg)
	if err != nil {
		return err
	}
	if store != nil {
		walletOpts = append(walletOpts, caravan.WithStore(store))
	}
	if closeStore != nil {
		s.closers = append(s.closers, closeStore)
	}

	s.signer, err = o.loadSigner()
	if err != nil {
		return err
	}
	if s.signer != nil {
		walletOpts = append(walletOpts, caravan.WithSigners(s.signer))
	}

	if relayURL := valueOrEnv(o.relayURL, EnvRelayURL); relayURL != "" {
		domain, err := s.cfg.Domain()
		if err != nil {
			return err
		}
		s.relay = relay.NewClient(relayURL, domain)

		remote, err := remoteSigners(ctx, executor, s.relay, s.signer)
		if err != nil {
			return err
		}
		walletOpts = append(walletOpts, caravan.WithSigners(remote...))
	}

	s.wallet, err = caravan.NewWallet(s.cfg, executor, walletOpts...)
	if err != nil {
		return err
	}

	return s.verify(ctx)
}

// resolveEnvFile skips the default .env file when it does not exist.
func (o *options) resolveEnvFile() string {
	if o.envFile != defaultEnvFile {
		return o.envFile
	}
	if _, err := os.Stat(o.envFile); errors.Is(err, fs.ErrNotExist) {
		return ""
	}

	return o.envFile
}

// openStore returns the queue store to use instead of the default file store, if any.
func (o *options) openStore(cfg caravan.Config) (queue.Store, func() error, error) {
	switch o.store {
	case storeFile, "":
		return nil, nil, nil
	case storePebble:
		if err := os.MkdirAll(cfg.QueueDir, 0o700); err != nil {
			return nil, nil, fmt.Errorf("failed to create %s: %w", cfg.QueueDir, err)
		}
		store, err := queue.OpenPebbleStore(filepath.Join(cfg.QueueDir, "queue.db"), nil)
		if err != nil {
			return nil, nil, err
		}

		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q, must be %s or %s", o.store, storeFile, storePebble)
	}
}

// loadSigner returns the local signer selected by the flags, or the private key signer when
// CARAVAN_PRIVATE_KEY is set. It returns nil when no signer is configured.
func (o *options) loadSigner() (caravan.Signer, error) {
	switch {
	case o.ledger && o.keystoreDir != "":
		return nil, errors.New("--ledger and --keystore are mutually exclusive")
	case o.ledger:
		path, err := accounts.ParseDerivationPath(o.derivationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse derivation path: %w", err)
		}

		return caravan.NewLedgerSigner(path), nil
	case o.keystoreDir != "":
		if !common.IsHexAddress(o.account) {
			return nil, fmt.Errorf("--account must be a hex address, got %q", o.account)
		}

		return caravan.NewKeystoreSigner(o.keystoreDir, common.HexToAddress(o.account), os.Getenv(EnvKeystorePassword))
	}

	pk, err := loadPrivateKey()
	if errors.Is(err, errNoTransactor) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return caravan.NewPrivateKeySigner(pk), nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	raw := os.Getenv(EnvPrivateKey)
	if raw == "" {
		return nil, errNoTransactor
	}

	pk, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvPrivateKey, err)
	}

	return pk, nil
}

func loadTransactor(chainID uint64) (*bind.TransactOpts, error) {
	pk, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	return bind.NewKeyedTransactorWithChainID(pk, new(big.Int).SetUint64(chainID))
}

// remoteSigners returns a coordinator signer for every wallet signer except local.
func remoteSigners(
	ctx context.Context, inspector sdk.Inspector, client *relay.Client, local caravan.Signer,
) ([]caravan.Signer, error) {
	signers, err := inspector.GetSigners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read signers: %w", err)
	}

	var self common.Address
	if local != nil {
		if self, err = local.GetAddress(); err != nil {
			return nil, err
		}
	}

	out := make([]caravan.Signer, 0, len(signers))
	for _, signer := range signers {
		if signer != self {
			out = append(out, client.Signer(ctx, signer))
		}
	}

	return out, nil
}

// publish posts the local signer's queued signature of hash to the coordinator.
func (s *session) publish(ctx context.Context, hash common.Hash) error {
	if s.relay == nil || s.signer == nil {
		return nil
	}

	address, err := s.signer.GetAddress()
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

	sig, ok := item.Signatures().Get(address)
	if !ok {
		return nil
	}

	return s.relay.Publish(ctx, item.Message(), address, sig)
}

// confirm waits for result to be mined.
func (s *session) confirm(ctx context.Context, result types.TransactionResult) error {
	receipt, err := evm.ConfirmTransaction(ctx, s.client, result)
	if err != nil {
		return err
	}

	sdk.LoggerFrom(ctx).Infof("transaction %s mined in block %d", result.Hash, receipt.BlockNumber)

	return nil
}

func valueOrEnv(value, key string) string {
	if value != "" {
		return value
	}

	return os.Getenv(key)
}
