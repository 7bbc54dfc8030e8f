package config

import "github.com/spf13/viper"

const (
	DefaultNetwork        = "MijinTest"
	DefaultDeadlineOffset = "2h"
	DefaultLogLevel       = "warn"
	DefaultCacheSize      = 1024
	DefaultPacketMaxSize  = 16 * 1024 * 1024
)

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("generation_hash", "")
	v.SetDefault("default_max_fee", 0)
	v.SetDefault("deadline_offset", DefaultDeadlineOffset)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("cache.size", DefaultCacheSize)
	v.SetDefault("batch.workers", 0) // 0 means one per CPU
	v.SetDefault("packet.max_size", DefaultPacketMaxSize)
}
