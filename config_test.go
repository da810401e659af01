package caravan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/internal/testutils/chaintest"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*caravan.Config)
		wantErr string
	}{
		{
			name:   "success",
			mutate: func(*caravan.Config) {},
		},
		{
			name:    "failure: missing address",
			mutate:  func(c *caravan.Config) { c.Address = common.Address{} },
			wantErr: "invalid config",
		},
		{
			name:    "failure: missing version",
			mutate:  func(c *caravan.Config) { c.Version = "" },
			wantErr: "invalid config",
		},
		{
			name:    "failure: unknown chain",
			mutate:  func(c *caravan.Config) { c.ChainID = 987654321987 },
			wantErr: "unknown EVM chain id 987654321987",
		},
		{
			name: "success: unknown chain allowed",
			mutate: func(c *caravan.Config) {
				c.ChainID = 987654321987
				c.AllowUnknownChain = true
			},
		},
		{
			name:    "failure: release without address",
			mutate:  func(c *caravan.Config) { c.Releases = map[string]common.Address{"1.1.0": {}} },
			wantErr: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig("")
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Domain(t *testing.T) {
	t.Parallel()

	domain, err := testConfig("").Domain()
	require.NoError(t, err)
	assert.Equal(t, chaintest.Domain1, domain)
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		caravan.EnvAddress, caravan.EnvChainID, caravan.EnvVersion, caravan.EnvQueueDir, caravan.EnvEphemeral,
		caravan.EnvReleasePrefix + "1_1_0",
	} {
		unsetEnv(t, key)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "CARAVAN_ADDRESS=" + chaintest.Wallet1.Hex() + "\n" +
		"CARAVAN_CHAIN_ID=1337\n" +
		"CARAVAN_VERSION=1.0.0\n" +
		"CARAVAN_QUEUE_DIR=" + filepath.Join(dir, "queue") + "\n" +
		"CARAVAN_EPHEMERAL=true\n" +
		"CARAVAN_RELEASE_1_1_0=0x1010000000000000000000000000000000000110\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := caravan.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, chaintest.Wallet1, cfg.Address)
	assert.Equal(t, uint64(1337), cfg.ChainID)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, filepath.Join(dir, "queue"), cfg.QueueDir)
	assert.True(t, cfg.Ephemeral)
	assert.Equal(t, map[string]common.Address{
		"1.1.0": common.HexToAddress("0x1010000000000000000000000000000000000110"),
	}, cfg.Releases)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(caravan.EnvAddress, chaintest.Wallet1.Hex())
	t.Setenv(caravan.EnvChainID, "1337")
	t.Setenv(caravan.EnvVersion, "1.0.0")

	cfg, err := caravan.LoadConfig("")
	require.NoError(t, err)
	assert.False(t, cfg.Ephemeral)
	assert.Empty(t, cfg.Releases)

	want, err := caravan.DefaultQueueDir()
	require.NoError(t, err)
	assert.Equal(t, want, cfg.QueueDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "failure: bad address",
			env:     map[string]string{caravan.EnvAddress: "0x12", caravan.EnvChainID: "1337", caravan.EnvVersion: "1.0.0"},
			wantErr: "CARAVAN_ADDRESS must be a hex address",
		},
		{
			name:    "failure: negative chain id",
			env:     map[string]string{caravan.EnvAddress: chaintest.Wallet1.Hex(), caravan.EnvChainID: "-1", caravan.EnvVersion: "1.0.0"},
			wantErr: "invalid CARAVAN_CHAIN_ID",
		},
		{
			name: "failure: bad ephemeral flag",
			env: map[string]string{
				caravan.EnvAddress: chaintest.Wallet1.Hex(), caravan.EnvChainID: "1337", caravan.EnvVersion: "1.0.0",
				caravan.EnvEphemeral: "sometimes",
			},
			wantErr: "invalid CARAVAN_EPHEMERAL",
		},
		{
			name: "failure: bad release address",
			env: map[string]string{
				caravan.EnvAddress: chaintest.Wallet1.Hex(), caravan.EnvChainID: "1337", caravan.EnvVersion: "1.0.0",
				caravan.EnvReleasePrefix + "1_1_0": "nope",
			},
			wantErr: "CARAVAN_RELEASE_1_1_0 must be a hex address",
		},
		{
			name:    "failure: missing env file",
			wantErr: "failed to load",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(caravan.EnvQueueDir, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			envFile := ""
			if tt.env == nil {
				envFile = filepath.Join(t.TempDir(), "missing.env")
			}

			_, err := caravan.LoadConfig(envFile)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
