// Package dateformat renders event instants in the event's own timezone.
package dateformat

import "time"

// Placeholder is shown when an instant is missing or unusable.
const Placeholder = "Invalid Date"

// DisplayLayout is the card layout, e.g. "Mar. 5 2026, 2:00 PM (EST)".
const DisplayLayout = "Jan. 2 2006, 3:04 PM (MST)"

// Format renders t in the named IANA timezone using layout. A zero instant
// yields Placeholder; an unknown timezone falls back to UTC.
func Format(t time.Time, timezone, layout string) string {
	if t.IsZero() {
		return Placeholder
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(layout)
}
