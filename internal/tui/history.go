package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHistory lists the snapshot dates, newest first. The date currently
// on screen is marked.
func renderHistory(dates []string, cursor int, shown string, st styles, width, height int) string {
	title := st.previewTitle.Render("History")
	if len(dates) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, st.placeholder.Render("No snapshots"))
	}

	rows := height - lipgloss.Height(title)
	if rows < 1 {
		rows = 1
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := min(len(dates), start+rows)

	lines := []string{title}
	for i := start; i < end; i++ {
		d := dates[i]
		label := truncateStr(d, width-4)
		if d == shown {
			label += st.dim.Render(" (shown)")
		}
		if i == cursor {
			lines = append(lines, st.itemSelected.Render("> ")+st.itemSelected.Render(label))
		} else {
			lines = append(lines, "  "+st.text.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}
