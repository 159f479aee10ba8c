package domain

import "time"

// DateRange is a stay with calendar-day granularity.
// Both boundaries are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Normalize widens the range to whole days: Start to 00:00:00, End to the last nanosecond of its day
func (r DateRange) Normalize() DateRange {
	return DateRange{
		Start: StartOfDay(r.Start),
		End:   EndOfDay(r.End),
	}
}

// Nights returns the number of calendar days between Start and End
func (r DateRange) Nights() int {
	sy, sm, sd := r.Start.Date()
	ey, em, ed := r.End.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// IsValid returns true if Start is a calendar day strictly before End
func (r DateRange) IsValid() bool {
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	return StartOfDay(r.Start).Before(StartOfDay(r.End))
}

// Contains returns true if t lies within the range, boundaries included
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// HasOverlap reports whether the proposed range shares at least one calendar day
// with any of the existing ranges.
//
// Ranges are compared as whole days. A range overlaps when its start or end falls
// inside an existing range, or when it strictly contains one. A checkout day equal
// to another stay's checkin day counts as an overlap.
func HasOverlap(proposed DateRange, existing []DateRange) bool {
	target := proposed.Normalize()

	for _, r := range existing {
		current := r.Normalize()

		if current.Contains(target.Start) ||
			current.Contains(target.End) ||
			(target.Start.Before(current.Start) && target.End.After(current.End)) {
			return true
		}
	}

	return false
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day in t's location
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
