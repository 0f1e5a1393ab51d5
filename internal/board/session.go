// Package board holds the single session state the job board renders from.
//
// A Session moves through Loading, then Current, Historical or Error. Every
// mutation recomputes the visible listings exactly once, so a renderer that
// redraws after each mutation never redraws twice for one user action.
package board

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
)

type DisplayMode int

const (
	Loading DisplayMode = iota
	LoadedCurrent
	LoadedHistorical
	Error
)

func (m DisplayMode) String() string {
	switch m {
	case Loading:
		return "loading"
	case LoadedCurrent:
		return "current"
	case LoadedHistorical:
		return "historical"
	case Error:
		return "error"
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// Placeholder is what the listing area shows instead of tiles.
type Placeholder int

const (
	NoPlaceholder Placeholder = iota
	PlaceholderLoading
	PlaceholderLoadFailed
	PlaceholderNoData
	PlaceholderNoResults
)

func (p Placeholder) Message() string {
	switch p {
	case PlaceholderLoading:
		return "Loading feed…"
	case PlaceholderLoadFailed:
		return "Could not load data"
	case PlaceholderNoData:
		return "No data available"
	case PlaceholderNoResults:
		return "No results match the current filters"
	}
	return ""
}

type Options struct {
	Engine   *filter.Engine
	Location *time.Location
	Tokens   []string // filter bar tokens, in display order
	Dark     bool
	Now      func() time.Time
}

type Session struct {
	mode      DisplayMode
	feed      *feed.Feed
	selection feed.Selection
	state     filter.State
	dark      bool
	err       error
	backup    bool

	visible  []feed.Listing
	revision int

	engine *filter.Engine
	loc    *time.Location
	tokens []string
	now    func() time.Time
}

func New(opts Options) *Session {
	if opts.Engine == nil {
		opts.Engine = filter.DefaultEngine()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		mode:   Loading,
		state:  filter.NewState(),
		dark:   opts.Dark,
		engine: opts.Engine,
		loc:    opts.Location,
		tokens: opts.Tokens,
		now:    opts.Now,
	}
}

// Loaded applies a load result. A feed read from the backup source is stale
// by definition, so its today list is ignored and the latest snapshot shown.
// A backup without any snapshot is reported as the primary failure.
func (s *Session) Loaded(res feed.Result) {
	if s.mode != Loading {
		return
	}
	f := res.Feed
	if f == nil {
		s.Failed(res.PrimaryErr)
		return
	}
	if res.Backup {
		stale := *f
		stale.Today = []feed.Listing{}
		if len(stale.History) == 0 {
			s.Failed(res.PrimaryErr)
			return
		}
		f = &stale
		s.err = res.PrimaryErr
		s.backup = true
	}
	s.feed = f
	s.selectCurrent()
	s.recompute()
}

func (s *Session) Failed(err error) {
	if s.mode != Loading {
		return
	}
	if err == nil {
		err = errors.New("no feed loaded")
	}
	s.mode = Error
	s.err = err
	s.visible = nil
	s.recompute()
}

func (s *Session) selectCurrent() {
	s.selection = s.feed.Select(s.now(), s.loc)
	s.mode = modeFor(s.selection)
}

func modeFor(sel feed.Selection) DisplayMode {
	if sel.Mode == feed.ModeHistorical {
		return LoadedHistorical
	}
	return LoadedCurrent
}

func (s *Session) loaded() bool {
	return s.mode == LoadedCurrent || s.mode == LoadedHistorical
}

// ToggleTag adds token to the active set if absent, removes it otherwise.
func (s *Session) ToggleTag(token string) {
	if !s.loaded() {
		return
	}
	s.state.Toggle(token)
	s.recompute()
}

// SetSearch updates the search text. Unchanged text is not a mutation.
func (s *Session) SetSearch(text string) {
	if !s.loaded() || text == s.state.SearchText {
		return
	}
	s.state.SearchText = text
	s.recompute()
}

func (s *Session) ClearFilters() {
	if !s.loaded() || s.state.Empty() {
		return
	}
	s.state.Clear()
	s.recompute()
}

// SelectDate shows the snapshot for date. Dates missing from the history
// fall back to the current listings.
func (s *Session) SelectDate(date string) {
	if !s.loaded() {
		return
	}
	s.selection = s.feed.SelectDate(date, s.now(), s.loc)
	s.mode = modeFor(s.selection)
	s.recompute()
}

func (s *Session) ResetToToday() {
	if !s.loaded() {
		return
	}
	s.selectCurrent()
	s.recompute()
}

// Preset is a starting selection, usually from command-line flags.
type Preset struct {
	Date   string
	Tags   []string
	Search string
}

func (p Preset) empty() bool {
	return p.Date == "" && len(p.Tags) == 0 && p.Search == ""
}

// Apply sets the date, tags and search of p with a single recompute.
func (s *Session) Apply(p Preset) {
	if !s.loaded() || p.empty() {
		return
	}
	if p.Date != "" {
		s.selection = s.feed.SelectDate(p.Date, s.now(), s.loc)
		s.mode = modeFor(s.selection)
	}
	for _, t := range p.Tags {
		if t != "" && !s.state.IsActive(t) {
			s.state.Toggle(t)
		}
	}
	if p.Search != "" {
		s.state.SearchText = p.Search
	}
	s.recompute()
}

func (s *Session) ToggleTheme() {
	s.dark = !s.dark
	s.recompute()
}

func (s *Session) recompute() {
	s.revision++
	if !s.loaded() {
		s.visible = nil
		return
	}
	s.visible = s.engine.Visible(s.selection.Listings, s.state)
}

func (s *Session) Mode() DisplayMode { return s.mode }
func (s *Session) Err() error { return s.err }
func (s *Session) Dark() bool { return s.dark }
func (s *Session) FromBackup() bool { return s.backup }
func (s *Session) Filter() filter.State { return s.state }
func (s *Session) Selection() feed.Selection { return s.selection }
func (s *Session) Visible() []feed.Listing { return s.visible }

// Revision counts recomputations of the visible set.
func (s *Session) Revision() int { return s.revision }

// Results returns the per-source health of the loaded feed.
func (s *Session) Results() map[string]feed.SourceStatus {
	if s.feed == nil {
		return nil
	}
	return s.feed.Results
}

// Dates returns the history dates available for selection, newest first.
func (s *Session) Dates() []string {
	if s.feed == nil {
		return nil
	}
	return s.feed.Dates()
}

// Tokens returns the configured filter tokens, then any other tag present
// in the current selection, then active tags missing from both so they can
// still be toggled off.
func (s *Session) Tokens() []string {
	out := append([]string(nil), s.tokens...)
	seen := make(map[string]bool, len(out))
	for _, t := range out {
		seen[t] = true
	}
	extra := append(feed.Tags(s.selection.Listings), s.state.Active()...)
	for _, t := range extra {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func (s *Session) Placeholder() Placeholder {
	switch s.mode {
	case Loading:
		return PlaceholderLoading
	case Error:
		return PlaceholderLoadFailed
	}
	if len(s.selection.Listings) == 0 {
		return PlaceholderNoData
	}
	if len(s.visible) == 0 {
		return PlaceholderNoResults
	}
	return NoPlaceholder
}

// UpdatedLabel is the text for the "last updated" region.
func (s *Session) UpdatedLabel() string {
	switch s.mode {
	case Loading:
		return "Loading…"
	case Error:
		return "Not updated"
	}
	return s.selection.Updated
}

// FilterSummary describes the visible count and the active criteria.
func (s *Session) FilterSummary() string {
	if !s.loaded() {
		return ""
	}
	total := len(s.selection.Listings)
	parts := []string{fmt.Sprintf("Showing %d of %d listings", len(s.visible), total)}
	if active := s.state.Active(); len(active) > 0 {
		parts = append(parts, "tags: "+strings.Join(active, ", "))
	}
	if s.state.SearchText != "" {
		parts = append(parts, fmt.Sprintf("search: %q", s.state.SearchText))
	}
	return strings.Join(parts, " · ")
}
