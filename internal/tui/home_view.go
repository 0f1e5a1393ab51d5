package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	` ___  _  _ __  __   ___  ___  _     ___  _____ `,
	`| _ \| || |\ \/ /  | _ \|_ _|| |   / _ \|_   _|`,
	`|  _/| __ | >  <   |  _/ | | | |__| (_) | | |  `,
	`|_|  |_||_|/_/\_\  |_|  |___||____|\___/  |_|  `,
}

// renderSplash is shown until the feed has loaded.
func renderSplash(spin, message string, st styles, width, height int) string {
	var lines []string
	for _, l := range asciiLogo {
		lines = append(lines, st.accent.Render(l))
	}
	lines = append(lines, st.dim.Render("Phoenix pilot job board"))
	lines = append(lines, "")
	lines = append(lines, "")
	lines = append(lines, spin+" "+st.placeholder.Render(message))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
