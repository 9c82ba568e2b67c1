package streamkit

import (
	"sync"
)

// Global config used by the package-level operations
var (
	defaultCfg  *Config
	defaultOnce sync.Once
	defaultErr  error
)

// Init initializes the global configuration used by Open, Create, EnsureDir
// and the other package-level operations. Without an explicit call the
// environment config is loaded lazily on first use. Only the first Init (or
// first implicit load) takes effect.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		if len(configs) > 0 {
			defaultCfg = configs[0]
			return
		}
		defaultCfg, defaultErr = GetConfig()
	})

	return defaultErr
}

func defaultConfig() (*Config, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultCfg, nil
}

// backendFor resolves the backend owning paths of the given kind using the
// global configuration.
func backendFor(kind Kind) (Backend, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return nil, err
	}
	return CreateBackend(kind, cfg)
}
