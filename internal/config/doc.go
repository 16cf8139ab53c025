// Package config resolves the strongly typed service configuration from the
// process environment, falling back to a local .env file when the environment
// alone is incomplete or ill-typed. The resolved Config is built once during
// startup, published process-wide, and never mutated afterwards.
package config
