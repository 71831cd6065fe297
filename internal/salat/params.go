// Package salat assembles daily prayer schedules from solar geometry.
package salat

// Madhab selects the shadow-length convention that defines Asr.
type Madhab int

const (
	Shafi  Madhab = iota // shadow equal to the object's height
	Hanafi               // shadow twice the object's height
)

// ShadowLength returns the gnomon shadow multiplier for the madhab.
func (m Madhab) ShadowLength() float64 {
	if m == Hanafi {
		return 2
	}
	return 1
}

func (m Madhab) String() string {
	if m == Hanafi {
		return "hanafi"
	}
	return "shafi"
}

// HighLatitudeRule selects the fallback policy for dates and latitudes
// where depression-angle twilight never occurs.
type HighLatitudeRule int

const (
	// MiddleOfTheNight bounds Fajr and Isha to the halves of the night.
	MiddleOfTheNight HighLatitudeRule = iota
	// SeventhOfTheNight bounds Fajr to the last seventh before sunrise
	// and Isha to the first seventh after sunset.
	SeventhOfTheNight
	// TwilightAngle scales the night portion by the configured angle,
	// one sixtieth of the night per degree.
	TwilightAngle
)

func (r HighLatitudeRule) String() string {
	switch r {
	case SeventhOfTheNight:
		return "seventhOfTheNight"
	case TwilightAngle:
		return "twilightAngle"
	default:
		return "middleOfTheNight"
	}
}

// Shafaq is the evening twilight glow convention used by the seasonal
// evening safeguard.
type Shafaq int

const (
	ShafaqGeneral Shafaq = iota
	ShafaqAhmer          // red glow
	ShafaqAbyad          // white glow
)

func (s Shafaq) String() string {
	switch s {
	case ShafaqAhmer:
		return "ahmer"
	case ShafaqAbyad:
		return "abyad"
	default:
		return "general"
	}
}

// Adjustments are per-event minute offsets applied before rounding.
type Adjustments struct {
	Fajr    int
	Sunrise int
	Dhuhr   int
	Asr     int
	Maghrib int
	Isha    int
}

// CalculationParameters configures a schedule computation. The zero
// value is usable but computes Fajr and Isha at the horizon; callers
// normally start from a method preset.
type CalculationParameters struct {
	// Method is the preset name the parameters came from, if any.
	Method string

	// FajrAngle and IshaAngle are degrees of solar depression below
	// the horizon.
	FajrAngle float64
	IshaAngle float64

	// IshaInterval, when positive, fixes Isha at this many minutes
	// after Maghrib and makes the angle (and any safeguard) moot.
	IshaInterval int

	Madhab           Madhab
	HighLatitudeRule HighLatitudeRule
	Shafaq           Shafaq

	// MethodAdjustments are the preset's customary minute offsets;
	// Adjustments are the caller's own. Both apply before rounding.
	MethodAdjustments Adjustments
	Adjustments       Adjustments
}

// NightPortions returns the fractions of the night that bound Fajr and
// Isha under the configured high-latitude rule.
func (p CalculationParameters) NightPortions() (fajr, isha float64) {
	switch p.HighLatitudeRule {
	case SeventhOfTheNight:
		return 1.0 / 7.0, 1.0 / 7.0
	case TwilightAngle:
		return p.FajrAngle / 60.0, p.IshaAngle / 60.0
	default:
		return 1.0 / 2.0, 1.0 / 2.0
	}
}
