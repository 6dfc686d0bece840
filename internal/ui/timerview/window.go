package timerview

import (
	"image/color"

	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the part of the timer engine the window drives.
type Controller interface {
	Start()
	Stop()
	Reset()
	ChangeMode()
	View() timer.View
}

type palette struct {
	from color.Color
	to   color.Color
}

var palettes = map[model.Mode]palette{
	model.ModeWork: {
		from: color.NRGBA{R: 245, G: 158, B: 11, A: 255},
		to:   color.NRGBA{R: 239, G: 68, B: 68, A: 255},
	},
	model.ModeBreak: {
		from: color.NRGBA{R: 234, G: 179, B: 8, A: 255},
		to:   color.NRGBA{R: 34, G: 197, B: 94, A: 255},
	},
}

const clockTextSize = 96

// Window shows the countdown with its controls.
type Window struct {
	window       fyne.Window
	controller   Controller
	background   *canvas.LinearGradient
	clockText    *canvas.Text
	workButton   *widget.Button
	breakButton  *widget.Button
	toggleButton *widget.Button
	resetButton  *widget.Button
}

// New creates the timer window. Render must be called on the fyne goroutine.
func New(app fyne.App, title string, controller Controller) *Window {
	window := app.NewWindow(title)

	view := &Window{
		window:     window,
		controller: controller,
	}

	view.background = canvas.NewLinearGradient(palettes[model.ModeWork].from, palettes[model.ModeWork].to, 45)

	panel := canvas.NewRectangle(color.NRGBA{R: 63, G: 63, B: 70, A: 255})
	panel.CornerRadius = 12

	view.clockText = canvas.NewText("--:--", color.NRGBA{R: 244, G: 244, B: 245, A: 255})
	view.clockText.Alignment = fyne.TextAlignCenter
	view.clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clockText.TextSize = clockTextSize

	view.workButton = widget.NewButton(model.ModeWork.Label(), func() { view.selectMode(model.ModeWork) })
	view.breakButton = widget.NewButton(model.ModeBreak.Label(), func() { view.selectMode(model.ModeBreak) })
	view.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), view.toggle)
	view.resetButton = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), view.reset)

	modes := container.NewHBox(layout.NewSpacer(), view.workButton, view.breakButton, layout.NewSpacer())
	controls := container.NewHBox(layout.NewSpacer(), view.toggleButton, view.resetButton, layout.NewSpacer())
	body := container.NewVBox(modes, layout.NewSpacer(), view.clockText, layout.NewSpacer(), controls)

	content := container.NewStack(
		view.background,
		container.NewPadded(container.NewStack(panel, container.NewPadded(body))),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(520, 360))

	view.Render(controller.View())
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render applies a timer view to the widgets.
func (view *Window) Render(state timer.View) {
	view.clockText.Text = state.Display.String()
	view.clockText.Refresh()

	colors := palettes[state.Mode]
	view.background.StartColor = colors.from
	view.background.EndColor = colors.to
	view.background.Refresh()

	view.workButton.Importance = importanceFor(state.Mode == model.ModeWork)
	view.breakButton.Importance = importanceFor(state.Mode == model.ModeBreak)
	view.workButton.Refresh()
	view.breakButton.Refresh()

	if state.Running {
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
	view.window.SetTitle(state.Mode.Label() + " " + state.Display.String())
}

// ClockText returns the rendered countdown.
func (view *Window) ClockText() string {
	return view.clockText.Text
}

func (view *Window) toggle() {
	if view.controller.View().Running {
		view.controller.Stop()
	} else {
		view.controller.Start()
	}
	view.Render(view.controller.View())
}

func (view *Window) reset() {
	view.controller.Reset()
	view.Render(view.controller.View())
}

// selectMode switches only when mode is not already active.
func (view *Window) selectMode(mode model.Mode) {
	if view.controller.View().Mode == mode {
		return
	}
	view.controller.ChangeMode()
	view.Render(view.controller.View())
}

func importanceFor(active bool) widget.Importance {
	if active {
		return widget.HighImportance
	}
	return widget.LowImportance
}
