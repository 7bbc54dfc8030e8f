package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// ErrMissingGenerationHash is returned when an operation needs the generation hash and none is configured.
var ErrMissingGenerationHash = errors.New("generation_hash is not configured")

// Config is the codec tool configuration.
type Config struct {
	// Network names the network stamped on encoded transactions, e.g. "MijinTest".
	Network string `mapstructure:"network"`

	// GenerationHash is the 64 hex character nemesis generation hash used for signing and hashing.
	GenerationHash string `mapstructure:"generation_hash"`

	// DefaultMaxFee is applied to encoded transactions that carry no fee.
	DefaultMaxFee uint64 `mapstructure:"default_max_fee"`

	// DeadlineOffset stamps a deadline of now+offset on encoded transactions that carry none.
	DeadlineOffset time.Duration `mapstructure:"deadline_offset"`

	LogLevel string `mapstructure:"log_level"`

	Cache  CacheConfig  `mapstructure:"cache"`
	Batch  BatchConfig  `mapstructure:"batch"`
	Packet PacketConfig `mapstructure:"packet"`

	configPath string
}

// CacheConfig sizes the decoded transaction cache.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// BatchConfig controls concurrent batch decoding.
type BatchConfig struct {
	// Workers bounds concurrent decodes. 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// PacketConfig bounds packet framing.
type PacketConfig struct {
	MaxSize uint32 `mapstructure:"max_size"`
}

// GetConfigPath returns the file the configuration was read from, if any.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// NetworkType parses Network.
func (c *Config) NetworkType() (tx.NetworkType, error) {
	return tx.NetworkTypeFromName(c.Network)
}

// GenesisHash parses GenerationHash.
func (c *Config) GenesisHash() (types.Hash256, error) {
	if c.GenerationHash == "" {
		return types.Hash256{}, ErrMissingGenerationHash
	}
	return types.Hash256FromHex(c.GenerationHash)
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// WorkerCount resolves Batch.Workers.
func (c *Config) WorkerCount() int {
	if c.Batch.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Batch.Workers
}

// Deadline returns the deadline for a transaction created at now.
func (c *Config) Deadline(now time.Time) uint64 {
	return tx.DeadlineAt(now.Add(c.DeadlineOffset))
}

func (c *Config) String() string {
	return fmt.Sprintf("network=%s max_fee=%d deadline_offset=%s cache=%d workers=%d packet_max=%d",
		c.Network, c.DefaultMaxFee, c.DeadlineOffset, c.Cache.Size, c.Batch.Workers, c.Packet.MaxSize)
}
