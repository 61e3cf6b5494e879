package model

import "time"

// Phase identifies the current activity period of the pomodoro cycle.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Config contains the phase lengths and the long-break cadence for the
// pomodoro cycle.
type Config struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	// LongBreakInterval is the number of completed work sessions after
	// which a long break replaces the short one.
	LongBreakInterval int
}

// DefaultConfig returns the reference pomodoro schedule.
func DefaultConfig() Config {
	return Config{
		WorkDuration:       60 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakInterval:  4,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (config Config) Normalize() Config {
	defaults := DefaultConfig()
	if config.WorkDuration <= 0 {
		config.WorkDuration = defaults.WorkDuration
	}
	if config.ShortBreakDuration <= 0 {
		config.ShortBreakDuration = defaults.ShortBreakDuration
	}
	if config.LongBreakDuration <= 0 {
		config.LongBreakDuration = defaults.LongBreakDuration
	}
	if config.LongBreakInterval <= 0 {
		config.LongBreakInterval = defaults.LongBreakInterval
	}
	return config
}

// PhaseDuration maps a phase to its configured length.
func (config Config) PhaseDuration(phase Phase) time.Duration {
	switch phase {
	case PhaseShortBreak:
		return config.ShortBreakDuration
	case PhaseLongBreak:
		return config.LongBreakDuration
	default:
		return config.WorkDuration
	}
}
