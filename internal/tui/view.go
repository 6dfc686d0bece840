package tui

import (
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"

	"github.com/charmbracelet/lipgloss"
)

var modeColors = map[model.Mode]lipgloss.Color{
	model.ModeWork:  lipgloss.Color("#ef4444"),
	model.ModeBreak: lipgloss.Color("#22c55e"),
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#a1a1aa"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#fafafa"))
	clockStyle     = lipgloss.NewStyle().Bold(true).Padding(1, 6).Border(lipgloss.RoundedBorder())
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa"))
	noticeStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#eab308"))
)

func (m *Model) View() string {
	accent := modeColors[m.view.Mode]

	sections := []string{
		m.renderTabs(accent),
		clockStyle.BorderForeground(accent).Render(m.view.Display.String()),
		statusStyle.Render(statusLine(m.view)),
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m *Model) renderTabs(accent lipgloss.Color) string {
	tabs := make([]string, 0, 2)
	for _, mode := range []model.Mode{model.ModeWork, model.ModeBreak} {
		if mode == m.view.Mode {
			tabs = append(tabs, activeTabStyle.Background(accent).Render(mode.Label()))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func statusLine(view timer.View) string {
	return string(view.Mode) + " · " + string(view.Status)
}
