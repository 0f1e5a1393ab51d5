package feed

import (
	"strings"
	"testing"
	"time"
)

func phoenix(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		t.Fatalf("loading %s: %v", DefaultTimeZone, err)
	}
	return loc
}

func listing(title string) Listing {
	return Listing{Title: title, Company: "Co", Link: "https://example.com/" + title, Source: "s"}
}

func TestSelectToday(t *testing.T) {
	f := &Feed{
		Today:   []Listing{listing("a"), listing("b"), listing("c")},
		History: map[string][]Listing{"2024-01-01": {listing("old")}},
	}
	now := time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC)

	sel := f.Select(now, phoenix(t))
	if sel.Mode != ModeCurrent {
		t.Fatalf("Mode = %v, want current", sel.Mode)
	}
	if len(sel.Listings) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(sel.Listings))
	}
	for i, want := range []string{"a", "b", "c"} {
		if sel.Listings[i].Title != want {
			t.Errorf("listing %d = %q, want %q", i, sel.Listings[i].Title, want)
		}
	}
	// 19:30 UTC is 12:30 in Phoenix, which does not observe DST.
	if sel.Updated != "Updated: Mar 1, 2024, 12:30 PM MST" {
		t.Errorf("Updated = %q", sel.Updated)
	}
}

func TestSelectLatestHistory(t *testing.T) {
	f := &Feed{
		Today: []Listing{},
		History: map[string][]Listing{
			"2023-12-31": {listing("older")},
			"2024-01-02": {listing("newest")},
			"2024-01-01": {listing("middle")},
		},
	}
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	sel := f.Select(now, phoenix(t))
	if sel.Mode != ModeHistorical {
		t.Fatalf("Mode = %v, want historical", sel.Mode)
	}
	if sel.Date != "2024-01-02" {
		t.Errorf("Date = %q, want 2024-01-02", sel.Date)
	}
	if len(sel.Listings) != 1 || sel.Listings[0].Title != "newest" {
		t.Errorf("unexpected listings: %v", sel.Listings)
	}
	if !strings.HasPrefix(sel.Updated, "2024-01-02 (from history") {
		t.Errorf("Updated = %q, want history marker", sel.Updated)
	}
}

func TestSelectEmpty(t *testing.T) {
	f := &Feed{Today: []Listing{}, History: map[string][]Listing{}}
	sel := f.Select(time.Now(), phoenix(t))
	if sel.Mode != ModeEmpty {
		t.Errorf("Mode = %v, want empty", sel.Mode)
	}
	if sel.Listings == nil || len(sel.Listings) != 0 {
		t.Errorf("expected empty non-nil listings, got %v", sel.Listings)
	}
}

func TestSelectDate(t *testing.T) {
	f := &Feed{
		Today: []Listing{listing("today")},
		History: map[string][]Listing{
			"2024-01-01": {listing("jan1")},
			"2024-01-02": {listing("jan2")},
		},
	}
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	loc := phoenix(t)

	sel := f.SelectDate("2024-01-01", now, loc)
	if sel.Mode != ModeHistorical || sel.Listings[0].Title != "jan1" {
		t.Errorf("SelectDate(2024-01-01) = %+v", sel)
	}

	sel = f.SelectDate("1999-01-01", now, loc)
	if sel.Mode != ModeCurrent || sel.Listings[0].Title != "today" {
		t.Errorf("unknown date should fall back to current, got %+v", sel)
	}
}

func TestScenarioHistoryFallback(t *testing.T) {
	f, err := Parse("jobs.json", []byte(scenarioJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := f.Select(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), phoenix(t))
	if sel.Mode != ModeHistorical || sel.Date != "2024-01-01" {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if len(sel.Listings) != 1 || sel.Listings[0].Title != "Pilot A" || !sel.Listings[0].HasTag("Part121") {
		t.Errorf("unexpected listings %+v", sel.Listings)
	}
}

func TestDatesSorted(t *testing.T) {
	f := &Feed{History: map[string][]Listing{"2024-02-01": nil, "2023-11-30": nil, "2024-01-15": nil}}
	got := f.Dates()
	want := []string{"2024-02-01", "2024-01-15", "2023-11-30"}
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryLabel(t *testing.T) {
	now := time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)
	got := HistoryLabel("2024-01-01", now, time.UTC)
	if got != "2024-01-01 (from history, 3 days ago)" {
		t.Errorf("HistoryLabel = %q", got)
	}
	if got := HistoryLabel("last-week", now, time.UTC); got != "last-week (from history)" {
		t.Errorf("HistoryLabel(non-date) = %q", got)
	}
}

func TestTags(t *testing.T) {
	listings := []Listing{
		{Tags: []string{"Cargo", "Part135"}},
		{Tags: []string{"Part135", "Part121", ""}},
		{},
	}
	got := Tags(listings)
	want := []string{"Cargo", "Part135", "Part121"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestSelectSkipsEmptyLatestSnapshot(t *testing.T) {
	loc := phoenix(t)
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, loc)

	f := &Feed{History: map[string][]Listing{
		"2024-01-01": {listing("Pilot A")},
		"2024-01-02": {},
	}}
	sel := f.Select(now, loc)
	if sel.Mode != ModeHistorical || sel.Date != "2024-01-01" {
		t.Fatalf("Select = %v %q, want historical 2024-01-01", sel.Mode, sel.Date)
	}
	if len(sel.Listings) != 1 || sel.Listings[0].Title != "Pilot A" {
		t.Errorf("listings = %v", sel.Listings)
	}

	// The empty date can still be picked explicitly.
	if sel := f.SelectDate("2024-01-02", now, loc); sel.Date != "2024-01-02" || len(sel.Listings) != 0 {
		t.Errorf("SelectDate(empty snapshot) = %q with %d listings", sel.Date, len(sel.Listings))
	}

	allEmpty := &Feed{History: map[string][]Listing{"2024-01-01": {}, "2024-01-02": nil}}
	if sel := allEmpty.Select(now, loc); sel.Mode != ModeHistorical || sel.Date != "2024-01-02" || sel.Listings == nil {
		t.Errorf("all empty: mode=%v date=%q", sel.Mode, sel.Date)
	}
}
