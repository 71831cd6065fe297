package astro

import (
	"math"
	"time"
)

// j2000 is the Julian Day of the J2000.0 epoch (2000 January 1.5 TT).
const j2000 = 2451545.0

// JulianDay returns the Julian Day for a Gregorian civil date and UTC
// hours past midnight. January and February are treated as months 13
// and 14 of the previous year.
func JulianDay(year int, month time.Month, day int, hours float64) float64 {
	y := float64(year)
	m := float64(month)
	d := float64(day) + hours/24

	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + b - 1524.5
}

// JulianCentury converts a Julian Day into Julian centuries from
// J2000.0, the time variable of the polynomial series.
func JulianCentury(jd float64) float64 {
	return (jd - j2000) / 36525
}
