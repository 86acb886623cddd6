package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render(" planeview ─ painter's order ")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.summary.String()))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.tbl.View()))
	b.WriteString("\n")

	status := statusStyle.Render(m.status)
	if m.help {
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, "  ",
			dimStyle.Render("←/→ yaw  ↑/↓ pitch  j/k scroll  r reset  h help  q quit"))
	}
	b.WriteString(status)
	return b.String()
}
