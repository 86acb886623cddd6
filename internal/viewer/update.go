package viewer

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetHeight(max(4, m.height-8))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left":
			m.orbit(-Step, 0)
			return m, nil
		case "right":
			m.orbit(Step, 0)
			return m, nil
		case "up":
			m.orbit(0, Step)
			return m, nil
		case "down":
			m.orbit(0, -Step)
			return m, nil
		case "r":
			m.yaw, m.pitch = m.homeYaw, m.homePitch
			m.resort()
			m.status = "view reset"
			return m, nil
		case "h", "?":
			m.help = !m.help
			return m, nil
		}
	}
	// Remaining keys (j/k, pgup/pgdown) scroll the table.
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}
