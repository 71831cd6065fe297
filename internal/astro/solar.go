package astro

import "math"

// SolarCoordinates is the apparent position of the Sun for a single
// Julian Day: declination and right ascension in degrees, plus the
// apparent sidereal time at Greenwich in degrees. Values are pure
// functions of the Julian Day and never change once computed.
type SolarCoordinates struct {
	Declination          float64
	RightAscension       float64
	ApparentSiderealTime float64
}

// NewSolarCoordinates evaluates the solar position series at the given
// Julian Day.
func NewSolarCoordinates(julianDay float64) SolarCoordinates {
	T := JulianCentury(julianDay)

	l0 := meanSolarLongitude(T)
	lp := meanLunarLongitude(T)
	omega := ascendingLunarNodeLongitude(T)
	lambda := degToRad(apparentSolarLongitude(T, l0))

	theta0 := meanSiderealTime(T)
	dPsi := nutationInLongitude(l0, lp, omega)
	dEpsilon := nutationInObliquity(l0, lp, omega)

	epsilon0 := meanObliquityOfTheEcliptic(T)
	epsilonApparent := degToRad(apparentObliquityOfTheEcliptic(T, epsilon0))

	return SolarCoordinates{
		Declination: radToDeg(math.Asin(math.Sin(epsilonApparent) * math.Sin(lambda))),
		RightAscension: unwindAngle(radToDeg(
			math.Atan2(math.Cos(epsilonApparent)*math.Sin(lambda), math.Cos(lambda)))),
		ApparentSiderealTime: unwindAngle(theta0 + dPsi*math.Cos(degToRad(epsilon0+dEpsilon))),
	}
}

// meanSolarLongitude returns the geometric mean longitude of the Sun in
// degrees for Julian century T.
func meanSolarLongitude(T float64) float64 {
	l0 := 280.4664567 + 36000.76983*T + 0.0003032*T*T
	return unwindAngle(l0)
}

// meanLunarLongitude returns the mean longitude of the Moon in degrees,
// needed only by the nutation series.
func meanLunarLongitude(T float64) float64 {
	return unwindAngle(218.3165 + 481267.8813*T)
}

// ascendingLunarNodeLongitude returns the longitude of the Moon's mean
// ascending node in degrees.
func ascendingLunarNodeLongitude(T float64) float64 {
	omega := 125.04452 - 1934.136261*T + 0.0020708*T*T + (T*T*T)/450000
	return unwindAngle(omega)
}

// meanSolarAnomaly returns the mean anomaly of the Sun in degrees.
func meanSolarAnomaly(T float64) float64 {
	return unwindAngle(357.52911 + 35999.05029*T - 0.0001537*T*T)
}

// solarEquationOfTheCenter corrects the mean anomaly for the
// eccentricity of Earth's orbit.
func solarEquationOfTheCenter(T, meanAnomaly float64) float64 {
	m := degToRad(meanAnomaly)
	return (1.914602-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
}

// apparentSolarLongitude applies the equation of center, aberration and
// an approximate nutation term to the mean longitude.
func apparentSolarLongitude(T, meanLongitude float64) float64 {
	longitude := meanLongitude + solarEquationOfTheCenter(T, meanSolarAnomaly(T))
	omega := 125.04 - 1934.136*T
	lambda := longitude - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	return unwindAngle(lambda)
}

// meanObliquityOfTheEcliptic returns the mean obliquity in degrees. The
// obliquity decreases roughly 0.013 degrees per century.
func meanObliquityOfTheEcliptic(T float64) float64 {
	return 23.439291 - 0.013004167*T - 0.0000001639*T*T + 0.0000005036*T*T*T
}

// apparentObliquityOfTheEcliptic adds the principal nutation term to the
// mean obliquity.
func apparentObliquityOfTheEcliptic(T, meanObliquity float64) float64 {
	o := 125.04 - 1934.136*T
	return meanObliquity + 0.00256*math.Cos(degToRad(o))
}

// meanSiderealTime returns the mean sidereal time at Greenwich in
// degrees (IAU 1982 polynomial).
func meanSiderealTime(T float64) float64 {
	jd := T*36525 + j2000
	theta := 280.46061837 +
		360.98564736629*(jd-j2000) +
		0.000387933*T*T -
		(T*T*T)/38710000
	return unwindAngle(theta)
}

// nutationInLongitude evaluates the low-order nutation series in
// longitude. Coefficients are arcseconds.
func nutationInLongitude(solarLongitude, lunarLongitude, ascendingNode float64) float64 {
	l0 := degToRad(solarLongitude)
	lp := degToRad(lunarLongitude)
	omega := degToRad(ascendingNode)
	return (-17.2/3600)*math.Sin(omega) -
		(1.32/3600)*math.Sin(2*l0) -
		(0.23/3600)*math.Sin(2*lp) +
		(0.21/3600)*math.Sin(2*omega)
}

// nutationInObliquity evaluates the low-order nutation series in
// obliquity. Coefficients are arcseconds.
func nutationInObliquity(solarLongitude, lunarLongitude, ascendingNode float64) float64 {
	l0 := degToRad(solarLongitude)
	lp := degToRad(lunarLongitude)
	omega := degToRad(ascendingNode)
	return (9.2/3600)*math.Cos(omega) +
		(0.57/3600)*math.Cos(2*l0) +
		(0.10/3600)*math.Cos(2*lp) -
		(0.09/3600)*math.Cos(2*omega)
}
