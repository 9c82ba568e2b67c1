package streamkit

import (
	"fmt"
	"sync"
)

// BackendFactory is a function that creates a Backend from a config
type BackendFactory func(cfg *Config) (Backend, error)

var (
	backendFactories = make(map[Kind]BackendFactory)
	factoryMutex     sync.RWMutex
)

// RegisterBackend registers a backend factory for a path kind. Driver
// packages call this from init(); activate them with a blank import.
func RegisterBackend(kind Kind, factory BackendFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	backendFactories[kind] = factory
}

// CreateBackend creates a backend instance for the given kind from config
func CreateBackend(kind Kind, cfg *Config) (Backend, error) {
	factoryMutex.RLock()
	factory, exists := backendFactories[kind]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, kind)
	}

	return factory(cfg)
}
