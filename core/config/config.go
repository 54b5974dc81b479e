package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load is called with a nil pointer.
var ErrNilConfig = errors.New("config pointer cannot be nil")

var (
	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)

	// .env loading happens once per process, before the first parse. A
	// missing .env file is not an error; the environment simply wins.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type is
// parsed once per process and cached: subsequent calls for the same type
// return the cached value, so identical types always observe identical
// configuration regardless of later environment changes.
//
// Example:
//
//	var cfg transport.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)

	mu.RLock()
	cached, ok := cache[t]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", t, err)
	}

	mu.Lock()
	// Concurrent loaders of the same type may race to this point; the first
	// stored value wins so every caller sees one consistent config.
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
	} else {
		cache[t] = *cfg
	}
	mu.Unlock()

	return nil
}

// MustLoad is Load that panics on failure. Useful during application startup
// where a missing or malformed configuration is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
