package app

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Goal != 128 || cfg.Step != 16 || !cfg.Unicode || cfg.Debug {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PINT_GOAL", "64")
	t.Setenv("PINT_STEP", "8")
	t.Setenv("PINT_UNICODE", "false")

	cfg := LoadConfig()
	if cfg.Goal != 64 {
		t.Errorf("Expected goal 64, got %d", cfg.Goal)
	}
	if cfg.Step != 8 {
		t.Errorf("Expected step 8, got %d", cfg.Step)
	}
	if cfg.Unicode {
		t.Error("Expected unicode disabled")
	}
}

func TestLoadConfigMalformedKeepsDefaults(t *testing.T) {
	t.Setenv("PINT_GOAL", "lots")
	t.Setenv("PINT_STEP", "")
	t.Setenv("PINT_UNICODE", "sometimes")

	if cfg := LoadConfig(); cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		goal    int
		step    int
		wantErr error
	}{
		{"valid", 128, 16, nil},
		{"max", 65535, 65535, nil},
		{"zero goal", 0, 16, ErrInvalidGoal},
		{"negative goal", -1, 16, ErrInvalidGoal},
		{"goal overflow", 65536, 16, ErrInvalidGoal},
		{"zero step", 128, 0, ErrInvalidStep},
		{"step overflow", 128, 70000, ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Goal: tt.goal, Step: tt.step}
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
