package tui

import (
	"fmt"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/status"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

func statusCell(r status.Row, st styles) string {
	if r.OK {
		return st.statusOK.Render("● " + r.Label())
	}
	return st.statusFail.Render("✗ " + r.Label())
}

// renderStatusTable draws one row per source. With no sources it returns the
// empty-state message instead of a header-only table.
func renderStatusTable(results map[string]feed.SourceStatus, st styles) string {
	rows := status.Rows(results)
	if len(rows) == 0 {
		return st.placeholder.Render(status.EmptyMessage)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.tableBorder).
		Headers("SOURCE", "STATUS", "COUNT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 2 {
				return st.tableCell.Align(lipgloss.Right)
			}
			return st.tableCell
		})
	for _, r := range rows {
		t.Row(r.Source, statusCell(r, st), humanize.Comma(int64(r.Count)))
	}
	return t.String()
}

// StatusReport renders the source health table outside the interactive board.
func StatusReport(results map[string]feed.SourceStatus, dark bool) string {
	st := newStyles(dark)
	s := status.Summarize(results)
	out := renderStatusTable(results, st)
	if s.Sources == 0 {
		return out
	}
	summary := fmt.Sprintf("%d healthy · %d failed · %s listings", s.Healthy, s.Failed, humanize.Comma(int64(s.Items)))
	return out + "\n" + st.dim.Render(summary)
}
