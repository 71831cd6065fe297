package astro

import "math"

// HorizonAltitude is the target altitude for rising and setting: 16
// arcminutes of solar semidiameter plus 34 arcminutes of standard
// atmospheric refraction below the geometric horizon.
const HorizonAltitude = -50.0 / 60.0

// siderealRate is the advance of the sidereal time in degrees per day.
const siderealRate = 360.985647

// SolarTime bundles the solar geometry needed to answer altitude
// queries for one date at one location. Coordinates for the previous
// and next day are kept so that a solve which straddles midnight can
// interpolate across the day boundary.
type SolarTime struct {
	observer Coordinates

	prev    SolarCoordinates
	current SolarCoordinates
	next    SolarCoordinates

	approxTransit float64

	// Transit, Sunrise and Sunset are fractional hours past the
	// date's UTC midnight. Sunrise and Sunset are NaN inside polar
	// day or polar night.
	Transit float64
	Sunrise float64
	Sunset  float64
}

// NewSolarTime builds the solar geometry for one civil date at the
// given coordinates. Inputs are used as given; range validation is the
// caller's concern.
func NewSolarTime(date Date, coordinates Coordinates) SolarTime {
	jd := JulianDay(date.Year, date.Month, date.Day, 0)

	s := SolarTime{
		observer: coordinates,
		prev:     NewSolarCoordinates(jd - 1),
		current:  NewSolarCoordinates(jd),
		next:     NewSolarCoordinates(jd + 1),
	}
	s.approxTransit = approximateTransit(coordinates.Longitude,
		s.current.ApparentSiderealTime, s.current.RightAscension)
	s.Transit = correctedTransit(s.approxTransit, coordinates.Longitude,
		s.current.ApparentSiderealTime,
		s.current.RightAscension, s.prev.RightAscension, s.next.RightAscension)
	s.Sunrise = s.HourAngle(HorizonAltitude, false)
	s.Sunset = s.HourAngle(HorizonAltitude, true)
	return s
}

// Observer returns the coordinates the geometry was built for.
func (s SolarTime) Observer() Coordinates {
	return s.observer
}

// Declination returns the solar declination in degrees at the date's
// midnight.
func (s SolarTime) Declination() float64 {
	return s.current.Declination
}

// HourAngle returns the fractional hour at which the Sun's center
// reaches the target altitude in degrees, before or after the meridian
// passage. The result is NaN when the altitude is not reached on this
// date.
func (s SolarTime) HourAngle(altitude float64, afterTransit bool) float64 {
	return correctedHourAngle(s.approxTransit, altitude, s.observer, afterTransit,
		s.current.ApparentSiderealTime,
		s.current.RightAscension, s.prev.RightAscension, s.next.RightAscension,
		s.current.Declination, s.prev.Declination, s.next.Declination)
}

// Afternoon returns the hour at which a vertical gnomon's shadow equals
// shadowLength times its height plus its noon shadow. The underlying
// altitude is always above the horizon, so the solve cannot fail.
func (s SolarTime) Afternoon(shadowLength float64) float64 {
	tangent := math.Abs(s.observer.Latitude - s.current.Declination)
	inverse := shadowLength + math.Tan(degToRad(tangent))
	altitude := radToDeg(math.Atan(1.0 / inverse))
	return s.HourAngle(altitude, true)
}

// approximateTransit estimates the meridian passage as a day fraction
// in [0, 1).
func approximateTransit(longitude, siderealTime, rightAscension float64) float64 {
	lw := longitude * -1
	return normalizeToScale((rightAscension+lw-siderealTime)/360, 1)
}

// correctedTransit applies one correction to the approximate transit
// and converts it to hours. The sidereal time is advanced to the trial
// fraction and the right ascension interpolated across the three-day
// window there.
func correctedTransit(approxTransit, longitude, siderealTime,
	rightAscension, prevRA, nextRA float64) float64 {
	lw := longitude * -1
	theta := unwindAngle(siderealTime + siderealRate*approxTransit)
	alpha := unwindAngle(interpolateAngles(rightAscension, prevRA, nextRA, approxTransit))
	h := closestAngle(theta - lw - alpha)
	dm := h / -360
	return (approxTransit + dm) * 24
}

// correctedHourAngle solves for the day fraction at which the Sun sits
// at the target altitude and applies a single refinement pass. The
// refinement is deliberately not iterated to convergence; the one-pass
// form is what the reference tables this solver is validated against
// use.
func correctedHourAngle(approxTransit, altitude float64, coordinates Coordinates,
	afterTransit bool, siderealTime,
	rightAscension, prevRA, nextRA,
	declination, prevDec, nextDec float64) float64 {
	lw := coordinates.Longitude * -1

	// NaN when the altitude is unreachable on this date.
	term1 := math.Sin(degToRad(altitude)) -
		math.Sin(degToRad(coordinates.Latitude))*math.Sin(degToRad(declination))
	term2 := math.Cos(degToRad(coordinates.Latitude)) * math.Cos(degToRad(declination))
	h0 := radToDeg(math.Acos(term1 / term2))

	m := approxTransit - h0/360
	if afterTransit {
		m = approxTransit + h0/360
	}

	theta := unwindAngle(siderealTime + siderealRate*m)
	alpha := unwindAngle(interpolateAngles(rightAscension, prevRA, nextRA, m))
	delta := interpolate(declination, prevDec, nextDec, m)
	h := theta - lw - alpha
	actual := altitudeOfCelestialBody(coordinates.Latitude, delta, h)

	term3 := actual - altitude
	term4 := 360 * math.Cos(degToRad(delta)) * math.Cos(degToRad(coordinates.Latitude)) * math.Sin(degToRad(h))
	dm := term3 / term4

	return (m + dm) * 24
}

// altitudeOfCelestialBody returns the altitude in degrees of a body
// with the given declination at the given local hour angle.
func altitudeOfCelestialBody(latitude, declination, localHourAngle float64) float64 {
	phi := degToRad(latitude)
	delta := degToRad(declination)
	h := degToRad(localHourAngle)
	return radToDeg(math.Asin(math.Sin(phi)*math.Sin(delta) + math.Cos(phi)*math.Cos(delta)*math.Cos(h)))
}
