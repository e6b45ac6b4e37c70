package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of samples produced
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer did not finish")
	return total
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	if osc == nil {
		t.Fatal("Expected non-nil oscillator")
	}

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Verify samples are within valid range [-1, 1]
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorTriangle verifies triangle wave generation
func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(110.0, 50*time.Millisecond, WaveTriangle, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	if samples[0][0] != -1.0 {
		t.Errorf("Expected triangle to start at -1.0, got %f", samples[0][0])
	}
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Triangle sample %d out of range: %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	if got := drain(t, osc); got != expected {
		t.Errorf("Expected %d samples, got %d", expected, got)
	}

	// Exhausted oscillator reports end of stream
	buf := make([][2]float64, 10)
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("Expected (0, false) after end, got (%d, %v)", n, ok)
	}
}

// TestEnvelopeShape verifies attack starts silent and release fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	osc := NewOscillator(0, duration, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, duration, 10*time.Millisecond, 10*time.Millisecond, rate)

	total := rate.N(duration)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	mid := total / 2
	if samples[mid][0] != 1.0 {
		t.Errorf("Expected full volume during sustain, got %f", samples[mid][0])
	}
	last := samples[total-1][0]
	if last <= 0 || last >= 0.1 {
		t.Errorf("Expected release tail near zero, got %f", last)
	}
}

// TestSoundEffectsFinish verifies every cue is a finite stream of the expected length
func TestSoundEffectsFinish(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound    SoundType
		expected int
	}{
		{SoundDrink, rate.N(DrinkSoundDuration)},
		{SoundGoal, 3 * rate.N(GoalSoundNoteDuration)},
	}

	for _, tt := range tests {
		s := GetSoundEffect(tt.sound, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for sound %d", tt.sound)
		}
		if got := drain(t, s); got != tt.expected {
			t.Errorf("Sound %d: expected %d samples, got %d", tt.sound, tt.expected, got)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestSilentVolume verifies zero volume yields silence without NaN
func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateDrinkSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, buf[i])
		}
	}
}
