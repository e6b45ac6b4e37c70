package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Config errors
var (
	ErrInvalidGoal = errors.New("app: goal must be between 1 and 65535")
	ErrInvalidStep = errors.New("app: step must be between 1 and 65535")
)

// Config holds host settings
type Config struct {
	Goal    int  // Ounces to reach, 1..65535
	Step    int  // Ounces added per drink, 1..65535
	Unicode bool // Sub-cell gauge precision
	Debug   bool // Write logs to file
}

// DefaultConfig returns the built-in host settings
func DefaultConfig() Config {
	return Config{
		Goal:    128,
		Step:    16,
		Unicode: true,
	}
}

// LoadConfig loads host configuration from environment variables
// Malformed values leave the defaults in place
func LoadConfig() Config {
	cfg := DefaultConfig()

	if goal := os.Getenv("PINT_GOAL"); goal != "" {
		if val, err := strconv.Atoi(goal); err == nil {
			cfg.Goal = val
		}
	}

	if step := os.Getenv("PINT_STEP"); step != "" {
		if val, err := strconv.Atoi(step); err == nil {
			cfg.Step = val
		}
	}

	if unicode := os.Getenv("PINT_UNICODE"); unicode != "" {
		if val, err := strconv.ParseBool(unicode); err == nil {
			cfg.Unicode = val
		}
	}

	return cfg
}

// Validate rejects values the counter cannot represent
func (c Config) Validate() error {
	if c.Goal < 1 || c.Goal > math.MaxUint16 {
		return fmt.Errorf("%w: got %d", ErrInvalidGoal, c.Goal)
	}
	if c.Step < 1 || c.Step > math.MaxUint16 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, c.Step)
	}
	return nil
}
