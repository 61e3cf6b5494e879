package preferences

import (
	"time"

	"tomatick/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakInterval  int

	SoundEnabled bool
	Autostart    bool

	// DailyTarget is the number of work sessions shown as the day's goal.
	DailyTarget int
}

// DefaultSettings returns default settings for Tomatick.
func DefaultSettings() Settings {
	config := model.DefaultConfig()
	return Settings{
		WorkDuration:       config.WorkDuration,
		ShortBreakDuration: config.ShortBreakDuration,
		LongBreakDuration:  config.LongBreakDuration,
		LongBreakInterval:  config.LongBreakInterval,
		SoundEnabled:       true,
		Autostart:          false,
		DailyTarget:        8,
	}
}

// Config converts settings to the engine configuration.
func (settings Settings) Config() model.Config {
	return model.Config{
		WorkDuration:       settings.WorkDuration,
		ShortBreakDuration: settings.ShortBreakDuration,
		LongBreakDuration:  settings.LongBreakDuration,
		LongBreakInterval:  settings.LongBreakInterval,
	}.Normalize()
}
