package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pomotimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings model.Settings
	onSave   func(model.Settings)
	workMin  *widget.Entry
	breakMin *widget.Entry
	chime    *widget.Entry
	volume   *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("pomotimer Settings")

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		workMin:  widget.NewEntry(),
		breakMin: widget.NewEntry(),
		chime:    widget.NewEntry(),
		volume:   widget.NewSlider(-5, 2),
	}
	prefs.chime.SetPlaceHolder("built-in bell")
	prefs.volume.Step = 0.5
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Intervals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), prefs.workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break"), prefs.breakMin, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Chime", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Sound file (mp3 or wav)"),
		prefs.chime,
		widget.NewLabel("Volume"),
		prefs.volume,
		widget.NewLabelWithStyle("Changes apply on next launch.", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.workMin.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.breakMin.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))
	prefs.chime.SetText(settings.ChimeFile)
	prefs.volume.SetValue(settings.ChimeVolume)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMin.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakMin.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	settings.ChimeFile = strings.TrimSpace(prefs.chime.Text)
	settings.ChimeVolume = prefs.volume.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
