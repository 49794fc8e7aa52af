package monitor

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	borderColor  = lipgloss.Color("240")
	hotBg        = lipgloss.Color("236")
)

// Pane chrome
var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	paneFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)
)

// Row styles
var (
	rowStyle = lipgloss.NewStyle()

	rowHotStyle = lipgloss.NewStyle().
			Background(hotBg).
			Bold(true)

	rowHotUnderlineStyle = lipgloss.NewStyle().
				Background(hotBg).
				Bold(true).
				Underline(true)
)

// Status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	filterStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
