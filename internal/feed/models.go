package feed

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Listing is a single job posting as written by the scrapers.
type Listing struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Link          string   `json:"link"`
	Source        string   `json:"source"`
	Tags          []string `json:"tags,omitempty"`
	HoursRequired *float64 `json:"hours_required,omitempty"`
}

// UntitledLabel stands in for a listing without a title.
const UntitledLabel = "(untitled)"

// UnmarshalJSON decodes a listing leniently. A malformed field falls back to
// its zero value instead of failing the whole feed. Hours must be a
// non-negative number.
func (l *Listing) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title         json.RawMessage `json:"title"`
		Company       json.RawMessage `json:"company"`
		Link          json.RawMessage `json:"link"`
		Source        json.RawMessage `json:"source"`
		Tags          json.RawMessage `json:"tags"`
		HoursRequired json.RawMessage `json:"hours_required"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = Listing{
		Title:         rawString(raw.Title),
		Company:       rawString(raw.Company),
		Link:          rawString(raw.Link),
		Source:        rawString(raw.Source),
		Tags:          rawTags(raw.Tags),
		HoursRequired: rawHours(raw.HoursRequired),
	}
	return nil
}

func rawString(b json.RawMessage) string {
	var s string
	if len(b) == 0 || json.Unmarshal(b, &s) != nil {
		return ""
	}
	return s
}

func rawTags(b json.RawMessage) []string {
	var items []json.RawMessage
	if len(b) == 0 || json.Unmarshal(b, &items) != nil {
		return nil
	}
	var tags []string
	for _, item := range items {
		if t := strings.TrimSpace(rawString(item)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// rawHours accepts a JSON number or a numeric string.
func rawHours(b json.RawMessage) *float64 {
	if len(b) == 0 {
		return nil
	}
	var h float64
	if err := json.Unmarshal(b, &h); err != nil {
		s := rawString(b)
		if s == "" {
			return nil
		}
		if h, err = strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64); err != nil {
			return nil
		}
	}
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil
	}
	return &h
}

// DisplayTitle is the title every renderer shows for the listing.
func (l Listing) DisplayTitle() string {
	if strings.TrimSpace(l.Title) == "" {
		return UntitledLabel
	}
	return l.Title
}

// HasTag reports whether the listing carries tag exactly.
func (l Listing) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HoursAtMost reports whether the listing states a flight-hour requirement of
// at most limit. Listings without a requirement never qualify.
func (l Listing) HoursAtMost(limit float64) bool {
	return l.HoursRequired != nil && *l.HoursRequired <= limit
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// UnmarshalJSON maps anything other than "success" to StatusFailure.
// The scrapers write "fail".
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == string(StatusSuccess) {
		*s = StatusSuccess
	} else {
		*s = StatusFailure
	}
	return nil
}

type SourceStatus struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

func (s SourceStatus) OK() bool { return s.Status == StatusSuccess }

// Feed is the whole jobs.json payload after defaulting.
type Feed struct {
	Today   []Listing               `json:"today"`
	History map[string][]Listing    `json:"history"`
	Results map[string]SourceStatus `json:"results"`
}

// Dates returns the history keys, newest first.
func (f *Feed) Dates() []string {
	dates := make([]string, 0, len(f.History))
	for d := range f.History {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// LatestDate returns the lexicographically greatest history key.
func (f *Feed) LatestDate() (string, bool) {
	dates := f.Dates()
	if len(dates) == 0 {
		return "", false
	}
	return dates[0], true
}

// Tags returns the distinct tags of listings in first-seen order.
func Tags(listings []Listing) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range listings {
		for _, t := range l.Tags {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
