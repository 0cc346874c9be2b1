package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	parsed = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment. Later
// files take precedence over earlier ones and over variables already set.
// Without arguments the .env file in the working directory is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once per process; later calls receive
// the cached copy. A missing default .env file is not an error.
//
//	type FilterDefaults struct {
//		Lowercase bool `env:"CHARFILTER_LOWERCASE" envDefault:"false"`
//	}
//
//	var d FilterDefaults
//	if err := config.Load(&d); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeOf((*T)(nil)).Elem()

	parsed.mu.Lock()
	defer parsed.mu.Unlock()

	if cached, ok := parsed.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	parsed.values[key] = fresh
	*v = fresh
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	parsed.mu.Lock()
	delete(parsed.values, reflect.TypeOf((*T)(nil)).Elem())
	parsed.mu.Unlock()

	return Load(v)
}

// ResetCache clears every cached configuration. Intended for tests.
func ResetCache() {
	parsed.mu.Lock()
	parsed.values = make(map[reflect.Type]any)
	parsed.mu.Unlock()
}
