package filter

import (
	"testing"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
)

func hours(h float64) *float64 { return &h }

func titles(listings []feed.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Title
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sample() []feed.Listing {
	return []feed.Listing{
		{Title: "First Officer", Company: "Ameriflight", Tags: []string{"Cargo"}, HoursRequired: hours(1500)},
		{Title: "Pilot A", Company: "Acme"},
		{Title: "Captain", Company: "SkyWest", Tags: []string{"Part121"}, HoursRequired: hours(1100)},
		{Title: "Pilot B", Company: "Beta", Tags: []string{"Part135"}, HoursRequired: hours(1101)},
		{Title: "Flight Instructor", Company: "Cutter Aviation", HoursRequired: hours(250)},
	}
}

func TestVisibleEmptyStateReturnsAll(t *testing.T) {
	e := DefaultEngine()
	in := sample()
	got := e.Visible(in, NewState())
	if !equal(titles(got), titles(in)) {
		t.Errorf("Visible(empty) = %v, want %v", titles(got), titles(in))
	}
}

func TestVisibleSearch(t *testing.T) {
	e := DefaultEngine()
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"company case-insensitive", "acme", []string{"Pilot A"}},
		{"title", "CAPTAIN", []string{"Captain"}},
		{"substring across both", "pilot", []string{"Pilot A", "Pilot B"}},
		{"company substring", "aviation", []string{"Flight Instructor"}},
		{"no match", "helicopter", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			st.SearchText = tt.search
			got := titles(e.Visible(sample(), st))
			if !equal(got, tt.want) {
				t.Errorf("Visible(search %q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestVisibleSearchScenario(t *testing.T) {
	listings := []feed.Listing{
		{Title: "Pilot A", Company: "Acme"},
		{Title: "Pilot B", Company: "Beta"},
	}
	st := NewState()
	st.SearchText = "acme"
	got := titles(DefaultEngine().Visible(listings, st))
	if !equal(got, []string{"Pilot A"}) {
		t.Errorf("got %v, want [Pilot A]", got)
	}
}

func TestVisibleTags(t *testing.T) {
	e := DefaultEngine()
	st := NewState()
	st.Toggle("Cargo")
	st.Toggle("Part121")
	got := titles(e.Visible(sample(), st))
	if !equal(got, []string{"First Officer", "Captain"}) {
		t.Errorf("got %v", got)
	}
}

func TestLowHoursBoundary(t *testing.T) {
	e := DefaultEngine()
	st := NewState()
	st.Toggle(LowHoursToken)
	got := titles(e.Visible(sample(), st))
	// 1100 is included, 1101 and missing hours are not.
	if !equal(got, []string{"Captain", "Flight Instructor"}) {
		t.Errorf("got %v", got)
	}
}

func TestCompanyAlias(t *testing.T) {
	e := NewEngine(Aliases{
		"Ameriflight": CompanyIs("Ameriflight"),
		"Acme":        CompanyIs("Acme"),
	})
	st := NewState()
	st.Toggle("Acme")
	got := titles(e.Visible(sample(), st))
	if !equal(got, []string{"Pilot A"}) {
		t.Errorf("got %v", got)
	}
	if !e.IsAlias("Acme") || e.IsAlias("Cargo") {
		t.Error("IsAlias mismatch")
	}
}

func TestCompanyAliasIsExact(t *testing.T) {
	e := NewEngine(Aliases{"Sky": CompanyIs("Sky")})
	st := NewState()
	st.Toggle("Sky")
	if got := e.Visible(sample(), st); len(got) != 0 {
		t.Errorf("partial company name should not match, got %v", titles(got))
	}
}

func TestSearchAndTagsCombine(t *testing.T) {
	e := DefaultEngine()
	st := NewState()
	st.Toggle(LowHoursToken)
	st.SearchText = "instructor"
	got := titles(e.Visible(sample(), st))
	if !equal(got, []string{"Flight Instructor"}) {
		t.Errorf("got %v", got)
	}
}

func TestVisibleIdempotent(t *testing.T) {
	e := DefaultEngine()
	st := NewState()
	st.Toggle("Part135")
	st.SearchText = "pilot"
	first := e.Visible(sample(), st)
	second := e.Visible(first, st)
	if !equal(titles(first), titles(second)) {
		t.Errorf("not idempotent: %v vs %v", titles(first), titles(second))
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	e := DefaultEngine()
	st := NewState()
	before := titles(e.Visible(sample(), st))

	st.Toggle("Cargo")
	if !st.IsActive("Cargo") {
		t.Fatal("expected Cargo active after first toggle")
	}
	st.Toggle("Cargo")
	if st.IsActive("Cargo") || !st.Empty() {
		t.Fatal("expected no active tags after second toggle")
	}
	if after := titles(e.Visible(sample(), st)); !equal(before, after) {
		t.Errorf("got %v, want %v", after, before)
	}
}

func TestStateActiveSorted(t *testing.T) {
	st := NewState()
	st.Toggle("b")
	st.Toggle("a")
	st.Toggle("c")
	if got := st.Active(); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Active() = %v", got)
	}
	st.Clear()
	if !st.Empty() {
		t.Error("expected empty state after Clear")
	}
}

func TestZeroValueStateToggle(t *testing.T) {
	var st State
	st.Toggle("Cargo")
	if !st.IsActive("Cargo") {
		t.Error("Toggle on zero State should activate the tag")
	}
}
