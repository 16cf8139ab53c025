package config

import (
	"errors"
	"testing"
)

// resetGlobal clears the published configuration so each test starts from an
// uninitialised process state.
func resetGlobal(t *testing.T) {
	t.Helper()

	initMu.Lock()
	current = nil
	initMu.Unlock()

	t.Cleanup(func() {
		initMu.Lock()
		current = nil
		initMu.Unlock()
	})
}

func TestInitPublishesOnce(t *testing.T) {
	resetGlobal(t)
	clearEnv(t)
	setCompleteEnv(t)
	t.Chdir(t.TempDir())

	first, err := Init()
	if err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if first.MagicString != "release-marker" {
		t.Fatalf("unexpected config published: %+v", first)
	}

	// Later environment changes must not affect the published value.
	t.Setenv("MAGIC_STRING", "changed-after-init")

	second, err := Init()
	if err != nil {
		t.Fatalf("repeat Init returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected repeat Init to return the published config, got %+v and %+v", first, second)
	}

	if got := Current(); got != first {
		t.Fatalf("expected Current to match Init result, got %+v", got)
	}
}

func TestInitMayBeRetriedAfterFailure(t *testing.T) {
	resetGlobal(t)
	clearEnv(t)
	t.Chdir(t.TempDir())

	if _, err := Init(); !errors.Is(err, ErrFallbackFileUnreadable) {
		t.Fatalf("expected first Init to fail without sources, got %v", err)
	}

	setCompleteEnv(t)

	cfg, err := Init()
	if err != nil {
		t.Fatalf("expected retried Init to succeed, got %v", err)
	}
	if cfg.AppEnv != EnvProduction {
		t.Fatalf("unexpected config after retry: %+v", cfg)
	}
}

func TestCurrentPanicsBeforeInit(t *testing.T) {
	resetGlobal(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Current to panic before Init")
		}
	}()
	Current()
}
