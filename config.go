package streamkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Device-sync transport to dial (memory, or a name registered by the
	// embedding application)
	DeviceDialer string `env:"STREAMKIT_DEVICE_DIALER,default:memory"`

	// Verify copies to another backend by re-reading the destination
	VerifyCopies    bool   `env:"STREAMKIT_VERIFY_COPIES,default:false"`
	VerifyAlgorithm string `env:"STREAMKIT_VERIFY_ALGORITHM,default:crc32"`

	// Upper bound on the size of a stream materialized into memory
	MaxStreamSize int64 `env:"STREAMKIT_MAX_STREAM_SIZE,default:67108864"` // 64MB default
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
