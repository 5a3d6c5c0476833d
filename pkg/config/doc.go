// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read on first use,
//     when it exists. LoadEnv reads one or more explicit files.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each struct type is parsed once and cached for the life of the process.
//   - MustLoad and MustLoadEnv panic on failure and are meant for startup.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// # Usage
//
//	type MongoConfig struct {
//	    URI      string `env:"MONGO_URI,required"`
//	    Database string `env:"MONGO_DATABASE"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Failures are reported with sentinel errors usable with errors.Is:
// ErrParsingConfig, ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile.
// A failed parse is not cached, so fixing the environment and calling Load
// again works.
package config
