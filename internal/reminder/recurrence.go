package reminder

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"khisha/internal/models"
)

// timeOfDayPattern matches 24h HH:MM clock values, e.g. "08:00" or "8:30"
var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a well-formed HH:MM time of day
func ValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// parseClock splits a validated HH:MM string into hour and minute
func parseClock(timeOfDay string) (hour, minute int) {
	parts := strings.SplitN(timeOfDay, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// NextOccurrence computes the next trigger instant for a reminder rule.
// The candidate is built on ref's calendar date at the rule's time of day
// with seconds zeroed. Daily rules advance one day only if the candidate
// is at or before ref; weekly and monthly rules advance unconditionally
// from the same-day candidate. A monthly advance lands on the same
// day-of-month, clamped to the last day of a shorter target month.
//
// timeOfDay must already be validated with ValidTimeOfDay; the function
// itself is pure and never reads the wall clock.
func NextOccurrence(timeOfDay string, frequency models.Frequency, ref time.Time) time.Time {
	hour, minute := parseClock(timeOfDay)
	candidate := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())

	switch frequency {
	case models.Daily:
		if !candidate.After(ref) {
			candidate = candidate.AddDate(0, 0, 1)
		}
	case models.Weekly:
		candidate = candidate.AddDate(0, 0, 7)
	case models.Monthly:
		candidate = addMonth(candidate)
	}

	return candidate
}

// addMonth advances t by one calendar month, clamping the day-of-month to
// the last valid day of the target month (Jan 31 -> Feb 28/29)
func addMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	// time.Date normalizes month overflow, so December rolls into January
	lastOfTarget := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastOfTarget {
		day = lastOfTarget
	}
	return time.Date(year, month+1, day, t.Hour(), t.Minute(), 0, 0, t.Location())
}
