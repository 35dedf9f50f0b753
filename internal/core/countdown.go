package core

import (
	"fmt"
	"math"
	"time"
)

// DaysUntil returns the whole days from now until local midnight of dateISO,
// rounded up. ok is false when the date does not parse.
func DaysUntil(now time.Time, dateISO string, loc *time.Location) (days int, ok bool) {
	if loc == nil {
		loc = time.UTC
	}
	target, ok := ParseDate(dateISO, loc)
	if !ok {
		return 0, false
	}
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc)
	diff := target.Sub(now).Hours() / 24
	return int(math.Ceil(diff)), true
}

// CountdownMessage is the header line for a number of days remaining.
func CountdownMessage(days int) string {
	switch {
	case days == 1:
		return "1 day to go!"
	case days > 1:
		return fmt.Sprintf("%d days to go!", days)
	case days == 0:
		return "It's today!"
	default:
		return "Happily ever after 💜"
	}
}
