package salat

import (
	"math"
	"time"
)

// The seasonal safeguard maps the day of year onto days elapsed since
// the most recent winter solstice for the observer's hemisphere and
// runs that through a piecewise-linear curve of minute offsets. The
// curve coefficients come from the Moonsighting Committee tables.

// daysSinceSolstice returns days elapsed since the hemisphere's most
// recent winter solstice. Northern observers count from roughly
// December 21 (offset 10), southern from roughly June 21 (offset 172,
// or 173 in leap years).
func daysSinceSolstice(dayOfYear, year int, latitude float64) int {
	northernOffset := 10
	southernOffset := 172
	daysInYear := 365
	if isLeapYear(year) {
		southernOffset = 173
		daysInYear = 366
	}

	if latitude >= 0 {
		d := dayOfYear + northernOffset
		if d >= daysInYear {
			d -= daysInYear
		}
		return d
	}
	d := dayOfYear - southernOffset
	if d < 0 {
		d += daysInYear
	}
	return d
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// seasonalAdjustment evaluates the six-segment piecewise-linear curve
// through the coefficients a..d at n days since the solstice. Segments
// join at 91, 137, 183, 229 and 275 days and the curve is continuous
// at every boundary.
func seasonalAdjustment(a, b, c, d, n float64) float64 {
	switch {
	case n < 91:
		return a + (b-a)/91.0*n
	case n < 137:
		return b + (c-b)/46.0*(n-91)
	case n < 183:
		return c + (d-c)/46.0*(n-137)
	case n < 229:
		return d + (c-d)/46.0*(n-183)
	case n < 275:
		return c + (b-c)/46.0*(n-229)
	default:
		return b + (a-b)/91.0*(n-275)
	}
}

// seasonAdjustedMorningTwilight returns the earliest acceptable Fajr as
// a minute offset before sunrise.
func seasonAdjustedMorningTwilight(latitude float64, dayOfYear, year int, sunrise time.Time) time.Time {
	abs := math.Abs(latitude)
	a := 75 + (28.65/55.0)*abs
	b := 75 + (19.44/55.0)*abs
	c := 75 + (32.74/55.0)*abs
	d := 75 + (48.10/55.0)*abs

	dyy := float64(daysSinceSolstice(dayOfYear, year, latitude))
	adjustment := seasonalAdjustment(a, b, c, d, dyy)

	return sunrise.Add(-time.Duration(math.Round(adjustment*60)) * time.Second)
}

// seasonAdjustedEveningTwilight returns the latest acceptable Isha as a
// minute offset after sunset. The coefficient set depends on the
// evening twilight glow convention.
func seasonAdjustedEveningTwilight(latitude float64, dayOfYear, year int, sunset time.Time, shafaq Shafaq) time.Time {
	abs := math.Abs(latitude)
	var a, b, c, d float64
	switch shafaq {
	case ShafaqAhmer:
		a = 62 + (17.40/55.0)*abs
		b = 62 - (7.16/55.0)*abs
		c = 62 + (5.12/55.0)*abs
		d = 62 + (19.44/55.0)*abs
	case ShafaqAbyad:
		a = 75 + (25.60/55.0)*abs
		b = 75 + (7.16/55.0)*abs
		c = 75 + (36.84/55.0)*abs
		d = 75 + (81.84/55.0)*abs
	default:
		a = 75 + (25.60/55.0)*abs
		b = 75 + (2.050/55.0)*abs
		c = 75 - (9.21/55.0)*abs
		d = 75 + (6.14/55.0)*abs
	}

	dyy := float64(daysSinceSolstice(dayOfYear, year, latitude))
	adjustment := seasonalAdjustment(a, b, c, d, dyy)

	return sunset.Add(time.Duration(math.Round(adjustment*60)) * time.Second)
}
