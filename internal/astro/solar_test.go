package astro

import (
	"math"
	"testing"
	"time"
)

func TestSolarCoordinatesSeasons(t *testing.T) {
	tests := []struct {
		name       string
		date       Date
		wantRAMin  float64
		wantRAMax  float64
		wantDecMin float64
		wantDecMax float64
	}{
		{
			name: "spring equinox, Sun near 0h RA and the equator",
			date: NewDate(2024, time.March, 20),
			wantRAMin: 358, wantRAMax: 2,
			wantDecMin: -1, wantDecMax: 1,
		},
		{
			name: "summer solstice, Sun near 6h RA and +23.4 declination",
			date: NewDate(2024, time.June, 21),
			wantRAMin: 88, wantRAMax: 92,
			wantDecMin: 23, wantDecMax: 23.5,
		},
		{
			name: "autumn equinox, Sun near 12h RA and the equator",
			date: NewDate(2024, time.September, 22),
			wantRAMin: 178, wantRAMax: 182,
			wantDecMin: -1, wantDecMax: 1,
		},
		{
			name: "winter solstice, Sun near 18h RA and -23.4 declination",
			date: NewDate(2024, time.December, 21),
			wantRAMin: 268, wantRAMax: 272,
			wantDecMin: -23.5, wantDecMax: -23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := JulianDay(tt.date.Year, tt.date.Month, tt.date.Day, 12)
			got := NewSolarCoordinates(jd)

			raOK := false
			if tt.wantRAMin > tt.wantRAMax {
				// Wrap through 360
				raOK = got.RightAscension >= tt.wantRAMin || got.RightAscension <= tt.wantRAMax
			} else {
				raOK = got.RightAscension >= tt.wantRAMin && got.RightAscension <= tt.wantRAMax
			}
			if !raOK {
				t.Errorf("RightAscension = %.3f, want between %.1f and %.1f",
					got.RightAscension, tt.wantRAMin, tt.wantRAMax)
			}

			if got.Declination < tt.wantDecMin || got.Declination > tt.wantDecMax {
				t.Errorf("Declination = %.3f, want between %.1f and %.1f",
					got.Declination, tt.wantDecMin, tt.wantDecMax)
			}
		})
	}
}

// TestDeclinationBounds samples three years of positions and checks the
// declination never leaves the obliquity band.
func TestDeclinationBounds(t *testing.T) {
	start := JulianDay(2024, time.January, 1, 0)
	for i := 0; i < 3*366; i += 5 {
		c := NewSolarCoordinates(start + float64(i))
		if math.Abs(c.Declination) > 23.5 {
			t.Errorf("Declination at jd %.1f = %.4f, outside +/-23.5", start+float64(i), c.Declination)
		}
	}
}

// TestAngleNormalization checks RA and sidereal time stay in [0, 360)
// across a spread of epochs.
func TestAngleNormalization(t *testing.T) {
	for year := 1900; year <= 2100; year += 11 {
		jd := JulianDay(year, time.May, 7, 0)
		c := NewSolarCoordinates(jd)
		if c.RightAscension < 0 || c.RightAscension >= 360 {
			t.Errorf("RightAscension at %d = %.4f, want [0, 360)", year, c.RightAscension)
		}
		if c.ApparentSiderealTime < 0 || c.ApparentSiderealTime >= 360 {
			t.Errorf("ApparentSiderealTime at %d = %.4f, want [0, 360)", year, c.ApparentSiderealTime)
		}
	}
}

// TestNutationScale checks the nutation series stays at arcsecond
// scale, well under a hundredth of a degree.
func TestNutationScale(t *testing.T) {
	for i := 0; i < 200; i++ {
		T := -1.0 + float64(i)*0.01 // 1900..2100
		l0 := meanSolarLongitude(T)
		lp := meanLunarLongitude(T)
		omega := ascendingLunarNodeLongitude(T)
		if d := math.Abs(nutationInLongitude(l0, lp, omega)); d > 0.006 {
			t.Errorf("nutationInLongitude at T=%.2f = %.6f, want < 0.006", T, d)
		}
		if d := math.Abs(nutationInObliquity(l0, lp, omega)); d > 0.004 {
			t.Errorf("nutationInObliquity at T=%.2f = %.6f, want < 0.004", T, d)
		}
	}
}

func TestMeanObliquityDrift(t *testing.T) {
	e2000 := meanObliquityOfTheEcliptic(0)
	e2100 := meanObliquityOfTheEcliptic(1)
	if math.Abs(e2000-23.439291) > 1e-6 {
		t.Errorf("mean obliquity at J2000 = %.6f, want 23.439291", e2000)
	}
	drift := e2000 - e2100
	if drift < 0.0125 || drift > 0.0135 {
		t.Errorf("obliquity drift per century = %.6f, want about 0.013", drift)
	}
}

func TestEquationOfCenterBound(t *testing.T) {
	// The equation of center peaks near twice the orbital eccentricity
	// in radians, just under two degrees.
	for i := 0; i < 360; i++ {
		c := solarEquationOfTheCenter(0.25, float64(i))
		if math.Abs(c) > 2 {
			t.Errorf("equation of center at M=%d = %.4f, want |C| < 2", i, c)
		}
	}
}
