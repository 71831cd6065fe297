// Package astro computes apparent solar positions and day-fraction event
// times from the Astronomical Almanac polynomial series.
package astro

import (
	"fmt"
	"math"
	"time"
)

// Coordinates is a geographic position in decimal degrees.
// Latitude is north positive, longitude east positive.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Latitude, c.Longitude)
}

// Date is a civil calendar date. No time of day is carried; event times
// are expressed as fractional hours past the date's UTC midnight.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the civil date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the civil date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Midnight returns the date's UTC midnight.
func (d Date) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Add returns the date shifted by the given number of days.
func (d Date) Add(days int) Date {
	return DateOf(d.Midnight().AddDate(0, 0, days))
}

// DayOfYear returns the 1-based ordinal day within the year.
func (d Date) DayOfYear() int {
	return d.Midnight().YearDay()
}

// At converts fractional hours past the date's UTC midnight into an
// absolute instant with whole-second resolution. ok is false when hours
// is NaN, which is how an unreachable solar altitude propagates out of
// the hour-angle solver.
func (d Date) At(hours float64) (t time.Time, ok bool) {
	if math.IsNaN(hours) {
		return time.Time{}, false
	}
	seconds := math.Floor(hours * 3600)
	return d.Midnight().Add(time.Duration(seconds) * time.Second), true
}
