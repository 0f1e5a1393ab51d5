// Package page renders the board as a single static HTML document.
package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/board"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/browser"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/status"
	"github.com/dustin/go-humanize"
)

//go:embed board.html.tmpl
var boardHTML string

var boardTmpl = template.Must(template.New("board").Parse(boardHTML))

type Tile struct {
	Title    string
	Company  string
	Source   string
	Link     string
	Tags     string
	Hours    string
	LowHours bool
}

type StatusRow struct {
	Source string
	Label  string
	Class  string
	Count  string
}

type Token struct {
	Name   string
	Active bool
}

// Data is everything the page shows. Render depends on nothing else.
type Data struct {
	Title         string
	Dark          bool
	Updated       string
	Summary       string
	Backup        bool
	Placeholder   string
	PlaceholderID string
	Tokens        []Token
	Tiles         []Tile
	Status        []StatusRow
	StatusEmpty   string
}

var placeholderIDs = map[board.Placeholder]string{
	board.PlaceholderLoading:    "loading",
	board.PlaceholderLoadFailed: "load-failed",
	board.PlaceholderNoData:     "no-data",
	board.PlaceholderNoResults:  "no-results",
}

// FromSession snapshots the session for rendering.
func FromSession(s *board.Session, lowHours float64) Data {
	if lowHours <= 0 {
		lowHours = filter.LowHoursThreshold
	}
	d := Data{
		Title:       "PHX Pilot Jobs",
		Dark:        s.Dark(),
		Updated:     s.UpdatedLabel(),
		Summary:     s.FilterSummary(),
		Backup:      s.FromBackup(),
		StatusEmpty: status.EmptyMessage,
	}
	if ph := s.Placeholder(); ph != board.NoPlaceholder {
		d.Placeholder = ph.Message()
		d.PlaceholderID = placeholderIDs[ph]
	}

	state := s.Filter()
	for _, tok := range s.Tokens() {
		d.Tokens = append(d.Tokens, Token{Name: tok, Active: state.IsActive(tok)})
	}

	for _, l := range s.Visible() {
		d.Tiles = append(d.Tiles, tile(l, lowHours))
	}

	for _, r := range status.Rows(s.Results()) {
		class := "status-fail"
		if r.OK {
			class = "status-success"
		}
		d.Status = append(d.Status, StatusRow{
			Source: r.Source,
			Label:  r.Label(),
			Class:  class,
			Count:  humanize.Comma(int64(r.Count)),
		})
	}
	return d
}

func tile(l feed.Listing, lowHours float64) Tile {
	t := Tile{
		Title:    l.DisplayTitle(),
		Company:  l.Company,
		Source:   l.Source,
		Tags:     strings.Join(l.Tags, ", "),
		LowHours: l.HoursAtMost(lowHours),
	}
	// Links that would not open from the terminal are not linked here either.
	if browser.Validate(l.Link) == nil {
		t.Link = l.Link
	}
	if l.HoursRequired != nil {
		t.Hours = humanize.Commaf(*l.HoursRequired) + " hrs"
	}
	return t
}

// Render writes the page for d to w.
func Render(w io.Writer, d Data) error {
	if err := boardTmpl.Execute(w, d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
