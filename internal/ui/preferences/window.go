package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/i18n"
)

// Window handles the preferences UI. Phase durations are deliberately not
// editable here; they live in the settings file only.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	sound       *widget.Check
	autostart   *widget.Check
	dailyTarget *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(i18n.T("Tomatick Settings"))

	sound := widget.NewCheck(i18n.T("Play sound when a phase ends"), nil)
	sound.SetChecked(settings.SoundEnabled)

	autostart := widget.NewCheck(i18n.T("Launch at login"), nil)
	autostart.SetChecked(settings.Autostart)

	dailyTarget := widget.NewEntry()
	dailyTarget.SetText(fmt.Sprintf("%d", settings.DailyTarget))

	schedule := widget.NewLabel(fmt.Sprintf("%s: %d / %d / %d %s",
		i18n.T("Schedule"),
		int(settings.WorkDuration.Minutes()),
		int(settings.ShortBreakDuration.Minutes()),
		int(settings.LongBreakDuration.Minutes()),
		i18n.T("min")))

	form := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("General"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		autostart,
		container.NewHBox(widget.NewLabel(i18n.T("Daily session target")), dailyTarget),
		schedule,
		widget.NewLabel(i18n.T("Edit settings.yaml to change durations")),
	)

	saveButton := widget.NewButton(i18n.T("Save"), nil)
	cancelButton := widget.NewButton(i18n.T("Cancel"), nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 280))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		sound:       sound,
		autostart:   autostart,
		dailyTarget: dailyTarget,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.autostart.SetChecked(settings.Autostart)
	prefs.dailyTarget.SetText(fmt.Sprintf("%d", settings.DailyTarget))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.Autostart = prefs.autostart.Checked
	if target, ok := parsePositiveInt(prefs.dailyTarget.Text); ok {
		settings.DailyTarget = target
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
