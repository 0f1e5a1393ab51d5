package filter

import (
	"sort"
	"strings"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"golang.org/x/text/cases"
)

// LowHoursThreshold is the default flight-hour limit, inclusive, for the
// low hours token.
const LowHoursThreshold = 1100

// LowHoursToken is the default token for listings open to low-time pilots.
const LowHoursToken = "Low Hours"

// Predicate decides whether a listing matches a filter token that aliases
// an attribute instead of a tag.
type Predicate func(feed.Listing) bool

// HoursAtMost matches listings that state a requirement of at most limit hours.
func HoursAtMost(limit float64) Predicate {
	return func(l feed.Listing) bool { return l.HoursAtMost(limit) }
}

// CompanyIs matches listings whose company equals name exactly.
func CompanyIs(name string) Predicate {
	return func(l feed.Listing) bool { return l.Company == name }
}

// Aliases maps a filter token to the predicate it stands for.
type Aliases map[string]Predicate

// Engine computes the visible subset of listings.
type Engine struct {
	aliases Aliases
}

func NewEngine(aliases Aliases) *Engine {
	if aliases == nil {
		aliases = Aliases{}
	}
	return &Engine{aliases: aliases}
}

// DefaultEngine carries only the low hours alias.
func DefaultEngine() *Engine {
	return NewEngine(Aliases{LowHoursToken: HoursAtMost(LowHoursThreshold)})
}

// IsAlias reports whether token is declared as an attribute alias.
func (e *Engine) IsAlias(token string) bool {
	_, ok := e.aliases[token]
	return ok
}

// Visible returns the listings matching both the search text and the active
// tokens, in input order.
func (e *Engine) Visible(listings []feed.Listing, st State) []feed.Listing {
	needle := ""
	if st.SearchText != "" {
		needle = fold(st.SearchText)
	}
	out := make([]feed.Listing, 0, len(listings))
	for _, l := range listings {
		if e.matchesSearch(l, needle) && e.matchesTags(l, st.ActiveTags) {
			out = append(out, l)
		}
	}
	return out
}

func (e *Engine) matchesSearch(l feed.Listing, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold(l.Title), needle) || strings.Contains(fold(l.Company), needle)
}

func (e *Engine) matchesTags(l feed.Listing, active map[string]bool) bool {
	if len(active) == 0 {
		return true
	}
	for tag := range active {
		if l.HasTag(tag) {
			return true
		}
		if pred, ok := e.aliases[tag]; ok && pred(l) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// State is the user's current filter and search selection.
type State struct {
	ActiveTags map[string]bool
	SearchText string
}

func NewState() State {
	return State{ActiveTags: make(map[string]bool)}
}

// Toggle adds tag when absent and removes it when present.
func (s *State) Toggle(tag string) {
	if s.ActiveTags == nil {
		s.ActiveTags = make(map[string]bool)
	}
	if s.ActiveTags[tag] {
		delete(s.ActiveTags, tag)
	} else {
		s.ActiveTags[tag] = true
	}
}

func (s *State) Clear() {
	s.ActiveTags = make(map[string]bool)
	s.SearchText = ""
}

func (s State) IsActive(tag string) bool { return s.ActiveTags[tag] }

func (s State) Empty() bool { return len(s.ActiveTags) == 0 && s.SearchText == "" }

// Active returns the active tokens sorted by name.
func (s State) Active() []string {
	out := make([]string, 0, len(s.ActiveTags))
	for t := range s.ActiveTags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
