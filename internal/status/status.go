// Package status summarizes per-source scraper health.
package status

import (
	"sort"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
)

// EmptyMessage is shown instead of a table when no source reported.
const EmptyMessage = "No scraper status available"

type Row struct {
	Source string
	OK     bool
	Count  int
}

func (r Row) Label() string {
	if r.OK {
		return string(feed.StatusSuccess)
	}
	return string(feed.StatusFailure)
}

// Rows returns one row per source, sorted by source name.
func Rows(results map[string]feed.SourceStatus) []Row {
	rows := make([]Row, 0, len(results))
	for name, res := range results {
		rows = append(rows, Row{Source: name, OK: res.OK(), Count: res.Count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Source < rows[j].Source })
	return rows
}

type Summary struct {
	Sources int
	Healthy int
	Failed  int
	Items   int
}

func Summarize(results map[string]feed.SourceStatus) Summary {
	var s Summary
	for _, res := range results {
		s.Sources++
		s.Items += res.Count
		if res.OK() {
			s.Healthy++
		} else {
			s.Failed++
		}
	}
	return s
}
