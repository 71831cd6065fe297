package astro

import "math"

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeToScale maps value into [0, max), preserving its phase.
func normalizeToScale(value, max float64) float64 {
	return value - max*math.Floor(value/max)
}

// unwindAngle normalizes an angle in degrees to [0, 360).
func unwindAngle(deg float64) float64 {
	return normalizeToScale(deg, 360)
}

// closestAngle shifts an angle in degrees to the equivalent value
// nearest zero, in [-180, 180].
func closestAngle(deg float64) float64 {
	if deg >= -180 && deg <= 180 {
		return deg
	}
	return deg - 360*math.Round(deg/360)
}

// interpolate evaluates the three-point Bessel interpolation of a
// tabulated value. y1, y2, y3 are the values at the previous, current
// and next tabulation; n is the fraction of the interval past y2.
func interpolate(y2, y1, y3, n float64) float64 {
	a := y2 - y1
	b := y3 - y2
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// interpolateAngles is interpolate for angles in degrees. The first
// differences are unwound so a wrap through 360 between tabulations
// does not corrupt the fit.
func interpolateAngles(y2, y1, y3, n float64) float64 {
	a := unwindAngle(y2 - y1)
	b := unwindAngle(y3 - y2)
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}
