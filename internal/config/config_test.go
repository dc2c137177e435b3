package config

import (
	"errors"
	"testing"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want int
	}{
		{name: "unset", env: map[string]string{}, want: 3000},
		{name: "empty", env: map[string]string{"PORT": ""}, want: 3000},
		{name: "blank", env: map[string]string{"PORT": "  "}, want: 3000},
		{name: "configured", env: map[string]string{"PORT": "8080"}, want: 8080},
		{name: "upper bound", env: map[string]string{"PORT": "65535"}, want: 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromEnv(envOf(tt.env))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Port != tt.want {
				t.Fatalf("expected port %d, got %d", tt.want, cfg.Port)
			}
		})
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "80a", "0", "-1", "65536"} {
		t.Run(raw, func(t *testing.T) {
			_, err := LoadFromEnv(envOf(map[string]string{"PORT": raw}))
			if !errors.Is(err, ErrInvalidPort) {
				t.Fatalf("expected ErrInvalidPort for %q, got %v", raw, err)
			}
		})
	}
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr :8080, got %s", cfg.Addr())
	}
}
