package config

import (
	"fmt"
	"strings"
)

// Environment identifies the deployment environment the service runs in.
// It drives logger verbosity and rate limiting defaults.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// ParseEnvironment converts a raw string into a known Environment.
// Matching trims surrounding whitespace and ignores case; anything outside
// the known set is rejected.
func ParseEnvironment(raw string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(raw))) {
	case EnvDevelopment:
		return EnvDevelopment, nil
	case EnvStaging:
		return EnvStaging, nil
	case EnvProduction:
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("unknown environment %q (expected development, staging or production)", raw)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so Environment values
// decode directly from environment variables.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}
