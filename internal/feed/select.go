package feed

import (
	"time"
	_ "time/tzdata"

	"github.com/dustin/go-humanize"
)

// DefaultTimeZone is the fixed business time zone for "last updated".
// It does not follow the viewer's locale.
const DefaultTimeZone = "America/Phoenix"

const dateLayout = "2006-01-02"

type Mode int

const (
	ModeEmpty Mode = iota
	ModeCurrent
	ModeHistorical
)

func (m Mode) String() string {
	switch m {
	case ModeCurrent:
		return "current"
	case ModeHistorical:
		return "historical"
	default:
		return "empty"
	}
}

// Selection is the effective listing set and how it was chosen.
type Selection struct {
	Listings []Listing
	Mode     Mode
	Date     string // history key, historical mode only
	Updated  string
}

// Select resolves the effective listing set: today if non-empty, else the
// latest non-empty history snapshot, else an empty selection. A failed
// scrape leaves an empty snapshot under its date, which is skipped.
func (f *Feed) Select(now time.Time, loc *time.Location) Selection {
	if len(f.Today) > 0 {
		return Selection{
			Listings: f.Today,
			Mode:     ModeCurrent,
			Updated:  UpdatedLabel(now, loc),
		}
	}
	if date, ok := f.latestNonEmpty(); ok {
		return f.historical(date, now, loc)
	}
	if date, ok := f.LatestDate(); ok {
		return f.historical(date, now, loc)
	}
	return Selection{Listings: []Listing{}, Mode: ModeEmpty, Updated: "No data available"}
}

func (f *Feed) latestNonEmpty() (string, bool) {
	for _, d := range f.Dates() {
		if len(f.History[d]) > 0 {
			return d, true
		}
	}
	return "", false
}

// SelectDate returns the snapshot for date, or Select's result when the
// feed has no such date.
func (f *Feed) SelectDate(date string, now time.Time, loc *time.Location) Selection {
	if _, ok := f.History[date]; !ok {
		return f.Select(now, loc)
	}
	return f.historical(date, now, loc)
}

func (f *Feed) historical(date string, now time.Time, loc *time.Location) Selection {
	listings := f.History[date]
	if listings == nil {
		listings = []Listing{}
	}
	return Selection{
		Listings: listings,
		Mode:     ModeHistorical,
		Date:     date,
		Updated:  HistoryLabel(date, now, loc),
	}
}

func UpdatedLabel(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return "Updated: " + now.In(loc).Format("Jan 2, 2006, 3:04 PM MST")
}

// HistoryLabel marks a snapshot date as historical, with its age when the
// key parses as a calendar date.
func HistoryLabel(date string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return date + " (from history)"
	}
	return date + " (from history, " + humanize.RelTime(t, now, "ago", "from now") + ")"
}
