package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"tomatick/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnTogglePause func()
	OnSkipPhase   func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	showItem    *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	skipItem    *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem(i18n.T("Show timer"), func() {
		if manager.callbacks.OnShowTimer != nil {
			manager.callbacks.OnShowTimer()
		}
	})

	manager.prefsItem = fyne.NewMenuItem(i18n.T("Preferences"), func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.pauseItem = fyne.NewMenuItem(i18n.T("Pause"), func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.skipItem = fyne.NewMenuItem(i18n.T("Skip"), func() {
		if manager.callbacks.OnSkipPhase != nil {
			manager.callbacks.OnSkipPhase()
		}
	})

	manager.quitItem = fyne.NewMenuItem(i18n.T("Quit"), func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = i18n.T("Resume")
	} else {
		manager.pauseItem.Label = i18n.T("Pause")
	}
	manager.refresh()
}

func (manager *Manager) refresh() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("paused"))
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Tomatick",
		manager.statusItem,
		manager.showItem,
		manager.prefsItem,
		manager.pauseItem,
		manager.skipItem,
		manager.quitItem,
	)
}
