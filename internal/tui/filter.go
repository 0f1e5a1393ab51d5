package tui

import (
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
	"github.com/charmbracelet/lipgloss"
)

// filterBar draws the toggle row. Which tokens are active lives in the
// session; the bar only tracks the keyboard cursor.
type filterBar struct {
	filterMode   bool
	filterCursor int
}

func (f *filterBar) move(delta, n int) {
	f.filterCursor += delta
	if f.filterCursor < 0 {
		f.filterCursor = 0
	}
	if f.filterCursor > n-1 {
		f.filterCursor = max(0, n-1)
	}
}

func (f *filterBar) current(tokens []string) (string, bool) {
	if f.filterCursor < 0 || f.filterCursor >= len(tokens) {
		return "", false
	}
	return tokens[f.filterCursor], true
}

func (f *filterBar) render(tokens []string, state filter.State, st styles, width int) string {
	sep := st.tabSep.Render(" · ")
	var parts []string

	if len(state.ActiveTags) == 0 {
		parts = append(parts, st.tabActive.Render("All"))
	} else {
		parts = append(parts, st.tabInactive.Render("All"))
	}

	for i, tok := range tokens {
		style := st.tabInactive
		if state.IsActive(tok) {
			style = st.tabActive
		}
		label := tok
		if f.filterMode && i == f.filterCursor {
			label = "[" + tok + "]"
		}
		parts = append(parts, style.Render(label))
	}

	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return st.filterBar.Width(width).Render(row)
}
