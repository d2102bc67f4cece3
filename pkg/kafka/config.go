package kafka

import "time"

// Config holds producer settings. Brokers come from the service
// configuration; the rest have conservative defaults.
type Config struct {
	Brokers      []string
	MaxAttempts  int
	BatchTimeout time.Duration
	RequireAcks  int    // -1 = all, 0 = none, 1 = leader only
	Compression  string // "none", "gzip", "snappy", "lz4", "zstd"
	Async        bool
}

func DefaultConfig(brokers []string) *Config {
	return &Config{
		Brokers:      brokers,
		MaxAttempts:  3,
		BatchTimeout: 100 * time.Millisecond,
		RequireAcks:  -1,
		Compression:  "snappy",
		Async:        false,
	}
}
