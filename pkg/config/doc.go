// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so a configuration is read once and
//     then stays fixed for the lifetime of the process.
//   - ForceReload and ResetCache drop cached values, which is handy in tests.
//
// # Usage
//
//	type Defaults struct {
//	    Lowercase bool `env:"CHARFILTER_LOWERCASE" envDefault:"false"`
//	    Numeric   bool `env:"CHARFILTER_NUMERIC" envDefault:"true"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var d Defaults
//	if err := config.Load(&d); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a `.env` file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
