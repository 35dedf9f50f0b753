package core

import (
	"sort"
	"strings"
	"time"
)

// groupKeySeparator joins day label and date into the grouping key. The key
// is an exact string match: "2025-08-31" and "2025-08-31 " would not merge,
// but cells are trimmed before they get here.
const groupKeySeparator = "__"

// dateLayouts are tried in order when ordering day groups.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"2006.01.02",
	"1/2/2006", "01/02/2006",
	"Jan 2, 2006", "January 2, 2006", "2 Jan 2006",
	"Mon, 02 Jan 2006",
	"20060102",
}

// ParseDate parses a group date using the accepted layouts.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseItinerary parses the itinerary table and groups it by day.
func ParseItinerary(text string) []DayGroup {
	return GroupItinerary(ParseTable(text).Rows)
}

// GroupItinerary groups itinerary rows by (day label, date).
//
// Groups are ordered by parsed date. Groups whose date does not parse are
// placed after all dated groups, in first-appearance order. Items inside a
// group are ordered by zero-padded start time.
func GroupItinerary(rows []RawRow) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, row := range rows {
		day := row.Get(ColDay)
		date := row.Get(ColDate)
		key := day + groupKeySeparator + date

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{DayLabel: day, DateISO: date, Items: []ItineraryItem{}})
		}
		groups[i].Items = append(groups[i].Items, NormalizeItineraryItem(row))
	}

	type dated struct {
		t  time.Time
		ok bool
	}
	keys := make([]dated, len(groups))
	for i, g := range groups {
		t, ok := ParseDate(g.DateISO, time.UTC)
		keys[i] = dated{t, ok}
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if ka.ok != kb.ok {
			return ka.ok
		}
		if !ka.ok {
			return false
		}
		return ka.t.Before(kb.t)
	})

	sorted := make([]DayGroup, len(groups))
	for i, idx := range order {
		g := groups[idx]
		sort.SliceStable(g.Items, func(a, b int) bool {
			return g.Items[a].StartTime < g.Items[b].StartTime
		})
		sorted[i] = g
	}

	return sorted
}

// Heading is the label shown above a day: the day label, or the weekday of
// the date when the label is empty.
func (g DayGroup) Heading() string {
	if g.DayLabel != "" {
		return g.DayLabel
	}
	if t, ok := ParseDate(g.DateISO, time.UTC); ok {
		return t.Weekday().String()
	}
	return g.DateISO
}

// DateLabel is the human-readable date under the heading.
func (g DayGroup) DateLabel() string {
	if t, ok := ParseDate(g.DateISO, time.UTC); ok {
		return t.Format("Monday, 2 January 2006")
	}
	return g.DateISO
}

// ItemCount returns the number of activities across all groups.
func ItemCount(groups []DayGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	return n
}
