package caravan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/caravan/internal/utils/safecast"
	"github.com/smartcontractkit/caravan/types"
)

// Environment variables read by LoadConfig.
const (
	EnvAddress       = "CARAVAN_ADDRESS"
	EnvChainID       = "CARAVAN_CHAIN_ID"
	EnvVersion       = "CARAVAN_VERSION"
	EnvQueueDir      = "CARAVAN_QUEUE_DIR"
	EnvEphemeral     = "CARAVAN_EPHEMERAL"
	EnvReleasePrefix = "CARAVAN_RELEASE_"
)

// Config identifies one wallet deployment and how its queue is kept.
type Config struct {
	// Address of the wallet contract.
	Address common.Address `validate:"required"`
	ChainID uint64         `validate:"required"`
	// Version of the wallet implementation, part of the signing domain.
	Version string `validate:"required"`

	// QueueDir is where the file store keeps queued items. Empty disables persistence.
	QueueDir string
	// Ephemeral disables every write to the queue store, e.g. on local test networks.
	Ephemeral bool

	// Releases maps implementation versions to their deployed addresses, used by Migrate.
	Releases map[string]common.Address `validate:"dive,keys,required,endkeys,required"`

	// AllowUnknownChain skips the chain id registry check.
	AllowUnknownChain bool
}

// Validate checks the required fields and that the chain id is a known EVM chain.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.AllowUnknownChain {
		return nil
	}

	chainID := strconv.FormatUint(c.ChainID, 10)
	if _, err := cselectors.GetChainDetailsByChainIDAndFamily(chainID, cselectors.FamilyEVM); err != nil {
		return fmt.Errorf("invalid config: unknown EVM chain id %s: %w", chainID, err)
	}

	return nil
}

// Domain returns the signing domain of the configured wallet.
func (c Config) Domain() (types.Domain, error) {
	return types.NewDomain(c.Version, c.ChainID, c.Address)
}

// LoadConfig reads the configuration from the process environment, after loading envFile if it
// is not empty. Variables already set in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	address := os.Getenv(EnvAddress)
	if !common.IsHexAddress(address) {
		return Config{}, fmt.Errorf("%s must be a hex address, got %q", EnvAddress, address)
	}

	chainID, err := safecast.StringToUint64(os.Getenv(EnvChainID))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvChainID, err)
	}

	cfg := Config{
		Address:  common.HexToAddress(address),
		ChainID:  chainID,
		Version:  os.Getenv(EnvVersion),
		QueueDir: os.Getenv(EnvQueueDir),
		Releases: make(map[string]common.Address),
	}

	if cfg.QueueDir == "" {
		cfg.QueueDir, err = DefaultQueueDir()
		if err != nil {
			return Config{}, err
		}
	}

	if raw := os.Getenv(EnvEphemeral); raw != "" {
		cfg.Ephemeral, err = safecast.StringToBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvEphemeral, err)
		}
	}

	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		suffix, ok := strings.CutPrefix(key, EnvReleasePrefix)
		if !ok || suffix == "" {
			continue
		}
		if !common.IsHexAddress(value) {
			return Config{}, fmt.Errorf("%s must be a hex address, got %q", key, value)
		}
		// CARAVAN_RELEASE_1_2_0 is the release of version 1.2.0
		cfg.Releases[strings.ReplaceAll(suffix, "_", ".")] = common.HexToAddress(value)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DefaultQueueDir returns the per-user cache directory for queued items.
func DefaultQueueDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Join(errors.New("no queue directory configured"), err)
	}

	return filepath.Join(dir, "caravan"), nil
}
