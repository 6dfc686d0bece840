// Package tui is a terminal front end for the timer engine.
package tui

import (
	"fmt"

	"pomotimer/internal/core/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of the timer engine the terminal UI drives.
type Controller interface {
	Start()
	Stop()
	Reset()
	ChangeMode()
	View() timer.View
}

type eventMsg timer.Event

type eventsClosedMsg struct{}

// Model is the Bubble Tea model for the countdown screen.
type Model struct {
	controller Controller
	events     <-chan timer.Event
	keys       KeyMap
	help       help.Model
	view       timer.View
	notice     string
	width      int
	height     int
}

// New creates a Model fed by events, typically from Engine.Subscribe.
func New(controller Controller, events <-chan timer.Event) *Model {
	return &Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		view:       controller.View(),
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		m.handleEvent(timer.Event(msg))
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleEvent(event timer.Event) {
	switch event.Type {
	case timer.EventChimeError:
		m.notice = "chime unavailable: " + event.Message
		return
	case timer.EventComplete:
		m.notice = fmt.Sprintf("%s finished, %s started", event.Finished.Label(), event.View.Mode.Label())
	}
	m.view = event.View
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Toggle):
		if m.controller.View().Running {
			m.controller.Stop()
		} else {
			m.controller.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		m.notice = ""
	case key.Matches(msg, m.keys.ChangeMode):
		m.controller.ChangeMode()
		m.notice = ""
	default:
		return nil
	}
	m.view = m.controller.View()
	return nil
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}
