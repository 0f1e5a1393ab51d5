package tui

import (
	"strings"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/board"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const lowHoursBadge = "LOW HOURS"

// Each tile is up to three lines plus a blank separator.
const itemHeight = 4

// formatHours keeps fractions so the label agrees with the low hours check.
func formatHours(h float64) string {
	return humanize.Commaf(h) + " hrs"
}

// renderListItem draws one tile. Empty optional fields are left out rather
// than drawn as blanks.
func renderListItem(l feed.Listing, selected bool, lowHours float64, st styles, width int) string {
	if width < 10 {
		width = 30
	}
	low := l.HoursAtMost(lowHours)

	gutter := "  "
	switch {
	case selected:
		gutter = st.itemSelected.Render("> ")
	case low:
		gutter = st.lowHoursMark.Render("▌ ")
	}

	title := l.DisplayTitle()
	titleStyle := st.itemTitle
	if selected {
		titleStyle = st.itemSelected
	}
	lines := []string{gutter + titleStyle.Render(truncateStr(title, width-4))}

	var meta []string
	if l.Company != "" {
		meta = append(meta, st.itemCompany.Render(l.Company))
	}
	if l.Source != "" {
		meta = append(meta, st.itemSource.Render(l.Source))
	}
	if len(meta) > 0 {
		lines = append(lines, "  "+strings.Join(meta, st.dim.Render(" · ")))
	}

	var extra []string
	if len(l.Tags) > 0 {
		extra = append(extra, st.itemTags.Render(truncateStr(strings.Join(l.Tags, ", "), width/2)))
	}
	if l.HoursRequired != nil {
		extra = append(extra, st.itemTags.Render(formatHours(*l.HoursRequired)))
	}
	if low {
		extra = append(extra, st.badge.Render(lowHoursBadge))
	}
	if len(extra) > 0 {
		lines = append(lines, "  "+strings.Join(extra, " "))
	}

	return strings.Join(lines, "\n")
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList replaces the listing area wholesale: either the placeholder or
// the window of tiles around cursor.
func renderList(listings []feed.Listing, ph board.Placeholder, cursor, height, width int, lowHours float64, st styles) string {
	if ph != board.NoPlaceholder {
		return center(st.placeholder.Render(ph.Message()), width, height)
	}

	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(listings) {
		end = len(listings)
		start = max(0, end-visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := renderListItem(listings[i], i == cursor, lowHours, st, width)
		b.WriteString(item)
		// Pad short tiles so every tile takes the same height.
		for n := strings.Count(item, "\n") + 1; n < itemHeight-1; n++ {
			b.WriteString("\n")
		}
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func center(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
