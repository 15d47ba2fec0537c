package core

import (
	"fmt"
	"sync"
)

var (
	registry   []SheetConfig
	registryMu sync.RWMutex
)

// Register appends a sheet config to the built-in list.
// Registration order is extraction order.
// Panics if the config is invalid or its label is already registered.
func Register(cfg SheetConfig) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	for _, existing := range registry {
		if existing.Label == cfg.Label {
			panic(fmt.Sprintf("sheet label already registered: %s", cfg.Label))
		}
	}

	registry = append(registry, cfg)
}

// Sheets returns a copy of the registered sheet configs in registration order.
func Sheets() []SheetConfig {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]SheetConfig, len(registry))
	copy(out, registry)
	return out
}

// ByLabel returns the registered config with the given label.
func ByLabel(label string) (SheetConfig, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, cfg := range registry {
		if cfg.Label == label {
			return cfg, true
		}
	}
	return SheetConfig{}, false
}

// SheetCount returns the number of registered sheet configs.
func SheetCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered sheet configs.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = nil
}
