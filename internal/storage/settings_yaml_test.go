package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tomatick/internal/ui/preferences"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "conf", "settings.yaml")

	saved := preferences.Settings{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  20 * time.Minute,
		LongBreakInterval:  3,
		SoundEnabled:       false,
		Autostart:          true,
		DailyTarget:        6,
	}
	if err := saveToPath(path, saved); err != nil {
		t.Fatalf("saveToPath: %v", err)
	}

	loaded, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")

	content := `work_minutes: -10
short_break_minutes: 0
long_break_interval: -1
sound_enabled: true
daily_target: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath: %v", err)
	}

	defaults := preferences.DefaultSettings()
	if loaded.WorkDuration != defaults.WorkDuration {
		t.Errorf("WorkDuration = %v, want default %v", loaded.WorkDuration, defaults.WorkDuration)
	}
	if loaded.ShortBreakDuration != defaults.ShortBreakDuration {
		t.Errorf("ShortBreakDuration = %v, want default %v", loaded.ShortBreakDuration, defaults.ShortBreakDuration)
	}
	if loaded.LongBreakInterval != defaults.LongBreakInterval {
		t.Errorf("LongBreakInterval = %d, want default %d", loaded.LongBreakInterval, defaults.LongBreakInterval)
	}
	if loaded.DailyTarget != defaults.DailyTarget {
		t.Errorf("DailyTarget = %d, want default %d", loaded.DailyTarget, defaults.DailyTarget)
	}
	if !loaded.SoundEnabled {
		t.Error("SoundEnabled = false, want true")
	}
}

func TestLoadMalformedYamlReturnsError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFromPath(path); err == nil {
		t.Error("loadFromPath on malformed yaml: got nil error, want error")
	}
}
