package core

// calendar.go builds the two per-activity calendar artifacts: a calendar
// service deep link and a downloadable .ics document with one event.

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	// DefaultStartTime is used when an activity has no start time.
	DefaultStartTime = "09:00"

	// DefaultEventLength is used when an activity has no end time.
	DefaultEventLength = time.Hour

	// DefaultProductID identifies the generator inside .ics files.
	DefaultProductID = "-//Wedding Week//Itinerary//EN"

	googleCalendarBase = "https://www.google.com/calendar/render"
	calendarUTCLayout  = "20060102T150405Z"
)

// CalendarEvent is one activity placed on the timeline.
type CalendarEvent struct {
	Title    string
	Details  string
	Location string
	Start    time.Time
	End      time.Time
}

// EventWindow returns the start and end of an activity on dateISO in loc.
// A missing start time means 09:00; a missing or unreadable end time means
// one hour after the start.
func EventWindow(dateISO string, item ItineraryItem, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, ok := ParseDate(dateISO, loc)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q", dateISO)
	}

	startClock := PadStartTime(item.StartTime)
	if startClock == "" {
		startClock = DefaultStartTime
	}
	start, err := atClock(day, startClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q: %w", item.StartTime, err)
	}

	end := start.Add(DefaultEventLength)
	if item.EndTime != "" {
		if t, err := atClock(day, PadStartTime(item.EndTime), loc); err == nil {
			end = t
		}
	}

	return start, end, nil
}

func atClock(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}

// NewCalendarEvent builds the calendar event for one activity.
func NewCalendarEvent(dateISO string, item ItineraryItem, loc *time.Location) (CalendarEvent, error) {
	start, end, err := EventWindow(dateISO, item, loc)
	if err != nil {
		return CalendarEvent{}, err
	}
	return CalendarEvent{
		Title:    item.Title,
		Details:  item.Description,
		Location: item.Location,
		Start:    start,
		End:      end,
	}, nil
}

func calendarStamp(t time.Time) string {
	return t.UTC().Format(calendarUTCLayout)
}

// GoogleCalendarURL returns the "add to calendar" deep link for ev.
func GoogleCalendarURL(ev CalendarEvent) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("details", ev.Details)
	q.Set("location", ev.Location)
	q.Set("dates", calendarStamp(ev.Start)+"/"+calendarStamp(ev.End))
	return googleCalendarBase + "?" + q.Encode()
}

// singleLine replaces commas and line breaks with spaces.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", ",", " ").Replace(s)
}

// EventUID returns a stable identifier for ev, so downloading the same
// activity twice updates rather than duplicates it in a calendar app.
func EventUID(ev CalendarEvent) string {
	name := calendarStamp(ev.Start) + "|" + ev.Title + "|" + ev.Location
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// ICSPayload renders a calendar document holding ev as its only event.
func ICSPayload(ev CalendarEvent, productID string) string {
	if productID == "" {
		productID = DefaultProductID
	}

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	event := cal.AddEvent(EventUID(ev))
	event.SetDtStampTime(ev.Start)
	event.SetStartAt(ev.Start)
	event.SetEndAt(ev.End)
	event.SetSummary(singleLine(ev.Title))
	event.SetDescription(singleLine(ev.Details))
	event.SetLocation(singleLine(ev.Location))

	return cal.Serialize()
}

// ICSFilename turns a title into a download name: whitespace runs become
// underscores and an empty title becomes "event".
func ICSFilename(title string) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "event"
	}
	return name + ".ics"
}

// TimeRange formats the time column of an activity card.
func TimeRange(item ItineraryItem) string {
	start := PadStartTime(item.StartTime)
	end := PadStartTime(item.EndTime)
	if end != "" && end != start {
		if start == "" {
			return end
		}
		return start + " – " + end
	}
	return start
}
