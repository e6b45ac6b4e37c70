package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[SoundType]float64{
		SoundDrink: 0.8,
		SoundGoal:  1.0,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound type %d to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound type %d, got %f", expectedVol, soundType, vol)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("PINT_AUDIO_ENABLED", "")
	t.Setenv("PINT_MASTER_VOLUME", "")
	t.Setenv("PINT_SFX_VOLUMES", "")
	t.Setenv("PINT_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadAudioConfigFromEnv verifies environment overrides
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("PINT_AUDIO_ENABLED", "false")
	t.Setenv("PINT_MASTER_VOLUME", "25")
	t.Setenv("PINT_SFX_VOLUMES", `{"drink":0.3,"unknown":0.9}`)
	t.Setenv("PINT_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundDrink] != 0.3 {
		t.Errorf("Expected drink volume 0.3, got %f", cfg.EffectVolumes[SoundDrink])
	}
	if cfg.EffectVolumes[SoundGoal] != 1.0 {
		t.Errorf("Expected goal volume untouched, got %f", cfg.EffectVolumes[SoundGoal])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigClampsVolume verifies out-of-range master volume is clamped
func TestLoadAudioConfigClampsVolume(t *testing.T) {
	tests := []struct {
		env      string
		expected float64
	}{
		{"150", 1.0},
		{"-10", 0.0},
		{"abc", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("PINT_MASTER_VOLUME", tt.env)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigInvalidValues verifies malformed values keep defaults
func TestLoadAudioConfigInvalidValues(t *testing.T) {
	t.Setenv("PINT_AUDIO_ENABLED", "maybe")
	t.Setenv("PINT_SFX_VOLUMES", "{not json")
	t.Setenv("PINT_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected invalid enabled flag to keep default")
	}
	if cfg.EffectVolumes[SoundDrink] != 0.8 {
		t.Errorf("Expected drink volume default, got %f", cfg.EffectVolumes[SoundDrink])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate default, got %d", cfg.SampleRate)
	}
}
