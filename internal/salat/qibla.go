package salat

import (
	"math"

	"github.com/waqtapp/waqt/internal/astro"
)

// kaaba is the reference point in Makkah that the qibla bearing points
// at.
var kaaba = astro.Coordinates{Latitude: 21.4225241, Longitude: 39.8261818}

// Qibla returns the great-circle initial bearing from the given
// coordinates to the Kaaba, in degrees clockwise from true north.
func Qibla(coordinates astro.Coordinates) float64 {
	lat := coordinates.Latitude * math.Pi / 180
	kaabaLat := kaaba.Latitude * math.Pi / 180
	lonDelta := (kaaba.Longitude - coordinates.Longitude) * math.Pi / 180

	bearing := math.Atan2(math.Sin(lonDelta),
		math.Cos(lat)*math.Tan(kaabaLat)-math.Sin(lat)*math.Cos(lonDelta))

	deg := bearing * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
