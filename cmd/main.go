package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tomatick/internal/audio"
	"tomatick/internal/core/engine"
	"tomatick/internal/platform"
	"tomatick/internal/storage"
	"tomatick/internal/ui/mainwindow"
	"tomatick/internal/ui/preferences"
	"tomatick/internal/ui/tray"
	"tomatick/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Tomatick"

func main() {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.tomatick.app")
	fyneApp.SetIcon(resources.MustIcon("tomatick.png"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	timer := engine.New(settings.Config(), engine.Config{TickInterval: time.Second})
	chime := audio.NewChime(settings.SoundEnabled)

	mainWin := mainwindow.New(fyneApp, settings.LongBreakInterval, settings.DailyTarget, mainwindow.Callbacks{
		OnStart: timer.Start,
		OnPause: timer.Pause,
		OnReset: timer.Reset,
		OnSkip:  timer.Skip,
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applyAutostart(settings, updated)
		settings = updated
		chime.SetEnabled(updated.SoundEnabled)
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	activeIcon := resources.MustIcon("tomatick.png")
	pausedIcon := resources.MustIcon("tomatick_paused.png")

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimer:   mainWin.Show,
			OnPreferences: prefsWindow.Show,
			OnTogglePause: func() {
				if timer.Snapshot().Active {
					timer.Pause()
				} else {
					timer.Start()
				}
			},
			OnSkipPhase: timer.Skip,
			OnQuit: func() {
				timer.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(activeIcon)

		events := timer.Subscribe(16)
		go func() {
			for event := range events {
				handleEvent(event, timer, mainWin, chime, trayManager)
				icon := activeIcon
				if !timer.Snapshot().Active {
					icon = pausedIcon
				}
				fyne.Do(func() {
					desktopApp.SetSystemTrayIcon(icon)
				})
			}
		}()
	} else {
		log.Printf("system tray unsupported on this platform")
		events := timer.Subscribe(16)
		go func() {
			for event := range events {
				handleEvent(event, timer, mainWin, chime, nil)
			}
		}()
	}

	mainWin.SetSnapshot(timer.Snapshot())
	mainWin.Show()
	fyneApp.Run()
}

func handleEvent(event engine.Event, timer *engine.Engine, mainWin *mainwindow.Window, chime *audio.Chime, trayManager *tray.Manager) {
	snapshot := timer.Snapshot()
	mainWin.SetSnapshot(snapshot)

	if trayManager != nil {
		trayManager.SetStatus(statusLine(snapshot))
		trayManager.SetPaused(!snapshot.Active && !snapshot.Pending())
	}

	if event.Type == engine.EventPhaseEnded {
		chime.Play()
		mainWin.ShowPhaseEnd(event.Message, timer.Acknowledge)
	}
}

func statusLine(snapshot engine.Snapshot) string {
	phase := strings.ReplaceAll(string(snapshot.Phase), "_", " ")
	return fmt.Sprintf("%s %s", phase, snapshot.Clock)
}

// applyAutostart syncs the OS launch-at-login entry with a settings change.
func applyAutostart(previous, updated preferences.Settings) {
	if previous.Autostart == updated.Autostart {
		return
	}

	if !updated.Autostart {
		if err := platform.DisableAutostart(appName); err != nil {
			log.Printf("autostart: %v", err)
		}
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if err := platform.EnableAutostart(appName, execPath); err != nil {
		log.Printf("autostart: %v", err)
	}
}
