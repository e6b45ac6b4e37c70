package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundDrink SoundType = iota // Counter incremented
	SoundGoal                   // Goal reached for the first time
	soundTypeCount
)

// soundNames maps sound types to their keys in PINT_SFX_VOLUMES
var soundNames = map[string]SoundType{
	"drink": SoundDrink,
	"goal":  SoundGoal,
}

// Sound shaping
const (
	DrinkSoundDuration = 90 * time.Millisecond
	DrinkSoundAttack   = 5 * time.Millisecond
	DrinkSoundRelease  = 60 * time.Millisecond

	GoalSoundNoteDuration = 120 * time.Millisecond
	GoalSoundAttack       = 5 * time.Millisecond
	GoalSoundRelease      = 80 * time.Millisecond

	speakerBuffer = 100 * time.Millisecond
)
