package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/nemtech/nem2-e2e-tests/internal/protocol/packet"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
}

func invalidf(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...))
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := c.NetworkType(); err != nil {
		result = multierror.Append(result, invalid("network", err))
	}
	if c.GenerationHash != "" {
		if _, err := c.GenesisHash(); err != nil {
			result = multierror.Append(result, invalid("generation_hash", err))
		}
	}
	if c.DeadlineOffset < 0 {
		result = multierror.Append(result, invalidf("deadline_offset", "must not be negative, got %s", c.DeadlineOffset))
	}
	if _, err := c.Level(); err != nil {
		result = multierror.Append(result, invalid("log_level", err))
	}
	if c.Cache.Size < 0 {
		result = multierror.Append(result, invalidf("cache.size", "must not be negative, got %d", c.Cache.Size))
	}
	if c.Batch.Workers < 0 {
		result = multierror.Append(result, invalidf("batch.workers", "must not be negative, got %d", c.Batch.Workers))
	}
	if c.Packet.MaxSize != 0 && c.Packet.MaxSize < packet.HeaderSize {
		result = multierror.Append(result, invalidf("packet.max_size", "must be at least %d, got %d", packet.HeaderSize, c.Packet.MaxSize))
	}

	return result.ErrorOrNil()
}
