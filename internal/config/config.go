package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/slvrtrn/envfall/internal/dotenv"
)

// FallbackFile is the fixed relative path consulted when the process
// environment alone cannot produce a complete configuration.
const FallbackFile = ".env"

// Config is the complete runtime configuration of the service. Every field
// is resolved from the process environment, with FallbackFile as the only
// secondary source. A Config is built once during startup and never mutated.
type Config struct {
	// AppEnv selects the deployment environment.
	AppEnv Environment `env:"APP_ENV,required,notEmpty" json:"app_env" yaml:"app_env"`
	// MagicString is an opaque marker surfaced verbatim through the runtime
	// API, used to verify which environment definition a deployment picked up.
	MagicString string `env:"MAGIC_STRING,required" json:"magic_string" yaml:"magic_string"`
	// MagicNumber is the numeric companion to MagicString, surfaced through
	// the runtime API and the periodic heartbeat.
	MagicNumber uint64 `env:"MAGIC_NUMBER,required,notEmpty" json:"magic_number" yaml:"magic_number"`
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:"0.0.0.0:8080" json:"listen_addr" yaml:"listen_addr"`
}

// Load resolves a Config from the process environment. When the environment
// alone is incomplete or ill-typed, the fallback env file is parsed and its
// pairs are injected into the process environment, overwriting existing
// values, before a single retry. Failures are reported through the Err*
// sentinels; no partially populated Config is ever returned.
func Load() (Config, error) {
	cfg, envErr := fromEnvironment()
	if envErr == nil {
		return cfg, nil
	}

	if err := applyFallback(FallbackFile); err != nil {
		return Config{}, err
	}

	cfg, envErr = fromEnvironment()
	if envErr != nil {
		return Config{}, fmt.Errorf("after applying %s: %w", FallbackFile, envErr)
	}
	return cfg, nil
}

// fromEnvironment performs one strict typed read of every Config field from
// the process environment. Both load passes go through here.
func fromEnvironment() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, translateEnvError(err)
	}
	return cfg, nil
}

// translateEnvError maps parser failures onto the package error taxonomy.
// The first reported failure decides the sentinel.
func translateEnvError(err error) error {
	var agg env.AggregateError
	if errors.As(err, &agg) {
		for _, sub := range agg.Errors {
			var notSet env.VarIsNotSetError
			if errors.As(sub, &notSet) {
				return fmt.Errorf("%w: %s", ErrMissingVariable, notSet.Key)
			}
			// Set-but-empty still counts as present; for the non-string
			// fields an empty value cannot parse, so it is a mismatch.
			var empty env.EmptyVarError
			if errors.As(sub, &empty) {
				return fmt.Errorf("%w: %w", ErrTypeMismatch, empty)
			}
			var parse env.ParseError
			if errors.As(sub, &parse) {
				return fmt.Errorf("%w: %w", ErrTypeMismatch, parse)
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
}

// applyFallback reads the fallback env file and injects every pair into the
// process environment. The whole file is parsed before the first write, so a
// malformed file never leaves the environment partially updated.
func applyFallback(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFallbackFileUnreadable, err)
	}

	pairs, err := dotenv.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedFallbackLine, err)
	}

	for _, pair := range pairs {
		if err := os.Setenv(pair.Key, pair.Value); err != nil {
			return fmt.Errorf("%w: set %s: %w", ErrMalformedFallbackLine, pair.Key, err)
		}
	}

	return nil
}
