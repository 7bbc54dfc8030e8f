package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

const testGenerationHash = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	config, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultNetwork, config.Network)
	assert.Equal(t, 2*time.Hour, config.DeadlineOffset)
	assert.Equal(t, DefaultCacheSize, config.Cache.Size)
	assert.Equal(t, uint32(DefaultPacketMaxSize), config.Packet.MaxSize)
	assert.Empty(t, config.GetConfigPath())
	assert.Positive(t, config.WorkerCount())

	network, err := config.NetworkType()
	require.NoError(t, err)
	assert.Equal(t, tx.NetworkMijinTest, network)

	level, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = config.GenesisHash()
	require.ErrorIs(t, err, ErrMissingGenerationHash)
}

func TestLoadConfigFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "nem2.toml", `
network = "TestNet"
generation_hash = "` + testGenerationHash + `"
default_max_fee = 20000
deadline_offset = "30m"

[cache]
size = 64

[batch]
workers = 3
`},
		{"yaml", "nem2.yaml", `
network: TestNet
generation_hash: ` + testGenerationHash + `
default_max_fee: 20000
deadline_offset: 30m
cache:
  size: 64
batch:
  workers: 3
`},
		{"json", "nem2.json", `{
  "network": "TestNet",
  "generation_hash": "` + testGenerationHash + `",
  "default_max_fee": 20000,
  "deadline_offset": "30m",
  "cache": {"size": 64},
  "batch": {"workers": 3}
}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.content)
			config, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, path, config.GetConfigPath())
			assert.Equal(t, "TestNet", config.Network)
			assert.Equal(t, uint64(20000), config.DefaultMaxFee)
			assert.Equal(t, 30*time.Minute, config.DeadlineOffset)
			assert.Equal(t, 64, config.Cache.Size)
			assert.Equal(t, 3, config.WorkerCount())
			assert.Equal(t, DefaultLogLevel, config.LogLevel)

			hash, err := config.GenesisHash()
			require.NoError(t, err)
			want, err := types.Hash256FromHex(testGenerationHash)
			require.NoError(t, err)
			assert.Equal(t, want, hash)
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeFile(t, "nem2.toml", "network = \"TestNet\"\n[cache]\nsize = 64\n")
	t.Setenv("NEM2_NETWORK", "MainNet")
	t.Setenv("NEM2_CACHE_SIZE", "8")
	t.Setenv("NEM2_PACKET_MAX_SIZE", "4096")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "MainNet", config.Network)
	assert.Equal(t, 8, config.Cache.Size)
	assert.Equal(t, uint32(4096), config.Packet.MaxSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestValidateCollectsEveryError(t *testing.T) {
	path := writeFile(t, "bad.toml", `
network = "Atlantis"
generation_hash = "XYZ"
log_level = "loud"
[cache]
size = -1
[batch]
workers = -2
[packet]
max_size = 4
`)
	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)
	for _, key := range []string{"network", "generation_hash", "log_level", "cache.size", "batch.workers", "packet.max_size"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestDeadline(t *testing.T) {
	config := &Config{DeadlineOffset: time.Hour}
	now := tx.NetworkEpoch.Add(time.Minute)
	assert.Equal(t, uint64(61*60*1000), config.Deadline(now))
}
