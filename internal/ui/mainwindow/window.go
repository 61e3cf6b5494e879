package mainwindow

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/engine"
	"tomatick/internal/core/model"
	"tomatick/internal/i18n"
)

// Callbacks defines control button handlers.
type Callbacks struct {
	OnStart func()
	OnPause func()
	OnReset func()
	OnSkip  func()
}

// Window is the timer face: clock, phase, session dots and controls.
type Window struct {
	window      fyne.Window
	clock       *canvas.Text
	phaseLabel  *widget.Label
	sessions    *widget.Label
	startPause  *widget.Button
	callbacks   Callbacks
	interval    int
	dailyTarget int
	running     bool
}

// New creates the main window. interval is the long-break cadence used to
// render the session dots; dailyTarget is the session goal shown next to it.
func New(app fyne.App, interval, dailyTarget int, callbacks Callbacks) *Window {
	window := app.NewWindow("Tomatick")

	clock := canvas.NewText("00:00", color.White)
	clock.TextSize = 64
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Monospace: true}

	phaseLabel := widget.NewLabelWithStyle(i18n.T("Work"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sessions := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	main := &Window{
		window:      window,
		clock:       clock,
		phaseLabel:  phaseLabel,
		sessions:    sessions,
		callbacks:   callbacks,
		interval:    interval,
		dailyTarget: dailyTarget,
	}

	main.startPause = widget.NewButton(i18n.T("Start"), main.handleStartPause)
	resetButton := widget.NewButton(i18n.T("Reset"), func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})
	skipButton := widget.NewButton(i18n.T("Skip"), func() {
		if callbacks.OnSkip != nil {
			callbacks.OnSkip()
		}
	})

	controls := container.NewGridWithColumns(3, main.startPause, resetButton, skipButton)
	content := container.NewVBox(
		phaseLabel,
		clock,
		sessions,
		controls,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(280, 220))
	window.SetCloseIntercept(window.Hide)

	return main
}

// Show displays the window.
func (main *Window) Show() {
	main.window.Show()
	main.window.RequestFocus()
}

// SetSnapshot refreshes the timer face from an engine snapshot. Safe to call
// from any goroutine.
func (main *Window) SetSnapshot(snapshot engine.Snapshot) {
	fyne.Do(func() {
		main.clock.Text = snapshot.Clock
		main.clock.Refresh()

		main.phaseLabel.SetText(phaseName(snapshot.Phase))
		main.sessions.SetText(main.sessionLine(snapshot.CompletedSessions))

		main.running = snapshot.Active
		if snapshot.Active {
			main.startPause.SetText(i18n.T("Pause"))
		} else if snapshot.CompletedSessions > 0 || snapshot.Phase != model.PhaseWork {
			main.startPause.SetText(i18n.T("Resume"))
		} else {
			main.startPause.SetText(i18n.T("Start"))
		}
	})
}

// ShowPhaseEnd pops the phase-end dialog; closing it acknowledges the phase
// change and resumes the countdown.
func (main *Window) ShowPhaseEnd(message string, onAcknowledge func()) {
	fyne.Do(func() {
		main.window.Show()
		main.window.RequestFocus()
		information := dialog.NewInformation("Tomatick", message, main.window)
		information.SetOnClosed(onAcknowledge)
		information.Show()
	})
}

func (main *Window) handleStartPause() {
	if main.running {
		if main.callbacks.OnPause != nil {
			main.callbacks.OnPause()
		}
	} else if main.callbacks.OnStart != nil {
		main.callbacks.OnStart()
	}
}

// sessionLine renders the dots for the current long-break cycle plus the
// day's total, e.g. "●●○○  3/8".
func (main *Window) sessionLine(completed int) string {
	filled := completed % main.interval
	if filled == 0 && completed > 0 {
		filled = main.interval
	}

	var dots strings.Builder
	for i := 0; i < main.interval; i++ {
		if i < filled {
			dots.WriteRune('●')
		} else {
			dots.WriteRune('○')
		}
	}
	return fmt.Sprintf("%s  %d/%d", dots.String(), completed, main.dailyTarget)
}

func phaseName(phase model.Phase) string {
	switch phase {
	case model.PhaseShortBreak:
		return i18n.T("Short break")
	case model.PhaseLongBreak:
		return i18n.T("Long break")
	default:
		return i18n.T("Work")
	}
}
