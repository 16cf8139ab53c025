package config

import "sync"

var (
	initMu  sync.Mutex
	current *Config
)

// Init loads the configuration exactly once and publishes it process-wide.
// Subsequent calls return the already published Config without touching the
// environment or the fallback file again. A failed Init publishes nothing
// and may be retried.
func Init() (Config, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if current != nil {
		return *current, nil
	}

	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}

	current = &cfg
	return cfg, nil
}

// Current returns a copy of the Config published by Init. It panics when
// called before a successful Init, which always indicates a startup
// ordering bug.
func Current() Config {
	initMu.Lock()
	defer initMu.Unlock()

	if current == nil {
		panic("config: Current called before successful Init")
	}
	return *current
}
