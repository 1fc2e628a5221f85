package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorAccent     = lipgloss.Color("#04B575")
	ColorDanger     = lipgloss.Color("#FF5F87")
	ColorMuted      = lipgloss.Color("#626262")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorBorder     = lipgloss.Color("#444444")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusReadyStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	StatusBusyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB454"))

	UserLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)

	AdvisorLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
