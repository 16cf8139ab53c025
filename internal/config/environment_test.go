package config

import "testing"

func TestParseEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Environment
		wantErr bool
	}{
		{name: "Development", input: "development", want: EnvDevelopment},
		{name: "Staging", input: "staging", want: EnvStaging},
		{name: "Production", input: "production", want: EnvProduction},
		{name: "MixedCase", input: "Production", want: EnvProduction},
		{name: "SurroundingWhitespace", input: "  development\t", want: EnvDevelopment},
		{name: "Unknown", input: "qa", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEnvironment(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %s", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEnvironmentUnmarshalText(t *testing.T) {
	t.Parallel()

	var env Environment
	if err := env.UnmarshalText([]byte("STAGING")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env != EnvStaging {
		t.Fatalf("expected staging, got %s", env)
	}

	if err := env.UnmarshalText([]byte("qa")); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
}
