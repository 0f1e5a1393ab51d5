package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(left, hints string, st styles, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return st.statusBar.Width(width).Render(bar)
}

func hintsFor(m mode) string {
	switch m {
	case modeSearch:
		return "esc clear  enter done"
	case modeFilter:
		return "←/→ move  space toggle  1-9 toggle  esc done"
	case modeHistory:
		return "j/k move  enter show  n current  esc back"
	case modeHelp:
		return "? close  q quit"
	}
	return "/ search  f filter  d history  t theme  ? help  q quit"
}
