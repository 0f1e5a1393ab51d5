package tui

import (
	"strings"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/charmbracelet/lipgloss"
)

func renderPreview(l *feed.Listing, lowHours float64, st styles, width, height int) string {
	if l == nil {
		return center(st.placeholder.Render("Select a listing"), width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	blocks := []string{st.previewTitle.Width(contentWidth).Render(l.DisplayTitle())}

	if l.Company != "" {
		blocks = append(blocks, st.previewCompany.Render(l.Company))
	}
	if l.Source != "" {
		blocks = append(blocks, st.previewBody.Render("Source: "+l.Source))
	}
	if len(l.Tags) > 0 {
		blocks = append(blocks, st.previewBody.Width(contentWidth).Render(wrapText("Tags: "+strings.Join(l.Tags, ", "), contentWidth)))
	}
	if l.HoursRequired != nil {
		hrs := "Hours required: " + formatHours(*l.HoursRequired)
		if l.HoursAtMost(lowHours) {
			hrs += " " + st.badge.Render(lowHoursBadge)
		}
		blocks = append(blocks, st.previewBody.Render(hrs))
	}
	if l.Link != "" {
		blocks = append(blocks, st.previewLink.Width(contentWidth).Render("o open in browser: "+l.Link))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return fitHeight(content, height)
}

func fitHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
