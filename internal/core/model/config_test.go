package model

import (
	"testing"
	"time"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()
	got := Config{}.Normalize()
	want := DefaultConfig()
	if got != want {
		t.Errorf("Normalize(zero) = %+v, want %+v", got, want)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	t.Parallel()
	config := Config{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  20 * time.Minute,
		LongBreakInterval:  3,
	}
	if got := config.Normalize(); got != config {
		t.Errorf("Normalize(%+v) = %+v, want unchanged", config, got)
	}
}

func TestPhaseDuration(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	tests := []struct {
		phase Phase
		want  time.Duration
	}{
		{PhaseWork, 60 * time.Minute},
		{PhaseShortBreak, 5 * time.Minute},
		{PhaseLongBreak, 15 * time.Minute},
	}
	for _, test := range tests {
		if got := config.PhaseDuration(test.phase); got != test.want {
			t.Errorf("PhaseDuration(%q) = %v, want %v", test.phase, got, test.want)
		}
	}
}
