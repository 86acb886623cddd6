package report

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	borderCol = lipgloss.Color("#243141")

	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true).Padding(0, 1)
	objectStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(baseDimFg).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(borderCol)
)
