package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayDrink()
	sm.PlayGoal()
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("Expected uninitialized manager to report disabled")
	}
}

// TestSoundManagerDisabledSkipsDevice verifies a disabled config never opens the speaker
func TestSoundManagerDisabledSkipsDevice(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}
	if sm.Enabled() {
		t.Error("Expected disabled manager to stay silent")
	}
	sm.PlayDrink()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayDrink()
	sm.Cleanup()
	if sm.Enabled() {
		t.Error("Expected cleanup to disable the manager")
	}
}
