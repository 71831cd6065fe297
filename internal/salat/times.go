package salat

import (
	"fmt"
	"time"

	"github.com/waqtapp/waqt/internal/astro"
)

// Prayer identifies one event of the daily schedule.
type Prayer int

const (
	NoPrayer Prayer = iota
	Fajr
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

func (p Prayer) String() string {
	switch p {
	case Fajr:
		return "Fajr"
	case Sunrise:
		return "Sunrise"
	case Dhuhr:
		return "Dhuhr"
	case Asr:
		return "Asr"
	case Maghrib:
		return "Maghrib"
	case Isha:
		return "Isha"
	default:
		return "None"
	}
}

// Timing is one named instant of a schedule. At is always UTC; callers
// apply a display zone at the presentation boundary.
type Timing struct {
	Event Prayer
	Label string
	At    time.Time
}

// Schedule holds the six daily instants for one date at one location.
// A Schedule is produced atomically by Times and never mutated.
type Schedule struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time

	Date        astro.Date
	Coordinates astro.Coordinates
	Parameters  CalculationParameters
}

// Times computes the schedule for one civil date. Coordinate validation
// is the caller's concern. An error is returned when no finite set of
// instants exists, which happens inside polar day or polar night where
// even the horizon crossing is undefined.
func Times(date astro.Date, coordinates astro.Coordinates, params CalculationParameters) (*Schedule, error) {
	solar := astro.NewSolarTime(date, coordinates)

	transit, transitOK := date.At(solar.Transit)
	sunrise, sunriseOK := date.At(solar.Sunrise)
	sunset, sunsetOK := date.At(solar.Sunset)
	if !transitOK || !sunriseOK || !sunsetOK {
		return nil, fmt.Errorf("salat: no horizon crossing on %v at %v", date, coordinates)
	}

	asr, asrOK := date.At(solar.Afternoon(params.Madhab.ShadowLength()))
	if !asrOK {
		return nil, fmt.Errorf("salat: afternoon shadow altitude unresolved on %v at %v", date, coordinates)
	}

	tomorrow := date.Add(1)
	tomorrowSolar := astro.NewSolarTime(tomorrow, coordinates)
	tomorrowSunrise, ok := tomorrow.At(tomorrowSolar.Sunrise)
	if !ok {
		return nil, fmt.Errorf("salat: no sunrise on %v at %v", tomorrow, coordinates)
	}
	night := tomorrowSunrise.Sub(sunset)

	fajr := resolveFajr(solar, date, coordinates, params, sunrise, night)
	isha := resolveIsha(solar, date, coordinates, params, sunset, night)
	if fajr.IsZero() || isha.IsZero() {
		return nil, fmt.Errorf("salat: no valid twilight instant on %v at %v", date, coordinates)
	}

	s := &Schedule{
		Fajr:    finalize(fajr, params.Adjustments.Fajr+params.MethodAdjustments.Fajr),
		Sunrise: finalize(sunrise, params.Adjustments.Sunrise+params.MethodAdjustments.Sunrise),
		Dhuhr:   finalize(transit, params.Adjustments.Dhuhr+params.MethodAdjustments.Dhuhr),
		Asr:     finalize(asr, params.Adjustments.Asr+params.MethodAdjustments.Asr),
		Maghrib: finalize(sunset, params.Adjustments.Maghrib+params.MethodAdjustments.Maghrib),
		Isha:    finalize(isha, params.Adjustments.Isha+params.MethodAdjustments.Isha),

		Date:        date,
		Coordinates: coordinates,
		Parameters:  params,
	}
	return s, nil
}

// resolveFajr merges the geometric depression-angle solve with the
// high-latitude safeguard. The safeguard is the earliest acceptable
// bound: it wins when the geometry failed or came out earlier. At exact
// equality the geometric instant is kept.
func resolveFajr(solar astro.SolarTime, date astro.Date, coordinates astro.Coordinates,
	params CalculationParameters, sunrise time.Time, night time.Duration) time.Time {
	fajr, _ := date.At(solar.HourAngle(-params.FajrAngle, false))

	moonsighting := params.Method == "MoonsightingCommittee"
	if moonsighting && coordinates.Latitude >= 55 {
		// The committee caps the depression solve by a seventh of the
		// night at high northern latitudes.
		fajr = sunrise.Add(-night / 7)
	}

	var safe time.Time
	if moonsighting {
		safe = seasonAdjustedMorningTwilight(coordinates.Latitude, date.DayOfYear(), date.Year, sunrise)
	} else {
		portion, _ := params.NightPortions()
		safe = sunrise.Add(-nightFraction(night, portion))
	}

	if fajr.IsZero() || fajr.Before(safe) {
		return safe
	}
	return fajr
}

// resolveIsha mirrors resolveFajr on the evening side, with the
// safeguard as the latest acceptable bound. A fixed sunset interval is
// always authoritative and bypasses the safeguard entirely.
func resolveIsha(solar astro.SolarTime, date astro.Date, coordinates astro.Coordinates,
	params CalculationParameters, sunset time.Time, night time.Duration) time.Time {
	if params.IshaInterval > 0 {
		return sunset.Add(time.Duration(params.IshaInterval) * time.Minute)
	}

	isha, _ := date.At(solar.HourAngle(-params.IshaAngle, true))

	moonsighting := params.Method == "MoonsightingCommittee"
	if moonsighting && coordinates.Latitude >= 55 {
		isha = sunset.Add(night / 7)
	}

	var safe time.Time
	if moonsighting {
		safe = seasonAdjustedEveningTwilight(coordinates.Latitude, date.DayOfYear(), date.Year, sunset, params.Shafaq)
	} else {
		_, portion := params.NightPortions()
		safe = sunset.Add(nightFraction(night, portion))
	}

	if isha.IsZero() || isha.After(safe) {
		return safe
	}
	return isha
}

// nightFraction scales the sunset-to-sunrise span by a portion.
func nightFraction(night time.Duration, portion float64) time.Duration {
	return time.Duration(portion * float64(night))
}

// finalize applies a minute offset and rounds to the nearest minute.
func finalize(t time.Time, offsetMinutes int) time.Time {
	return roundedMinute(t.Add(time.Duration(offsetMinutes) * time.Minute))
}

// roundedMinute rounds an instant to the nearest whole minute.
func roundedMinute(t time.Time) time.Time {
	s := t.Second()
	if s >= 30 {
		return t.Add(time.Duration(60-s) * time.Second)
	}
	return t.Add(-time.Duration(s) * time.Second)
}

// Timings returns the schedule in chronological event order.
func (s *Schedule) Timings() []Timing {
	return []Timing{
		{Event: Fajr, Label: "Fajr", At: s.Fajr},
		{Event: Sunrise, Label: "Sunrise", At: s.Sunrise},
		{Event: Dhuhr, Label: "Dhuhr", At: s.Dhuhr},
		{Event: Asr, Label: "Asr", At: s.Asr},
		{Event: Maghrib, Label: "Maghrib", At: s.Maghrib},
		{Event: Isha, Label: "Isha", At: s.Isha},
	}
}

// TimeFor returns the instant of one event. ok is false for NoPrayer.
func (s *Schedule) TimeFor(p Prayer) (time.Time, bool) {
	switch p {
	case Fajr:
		return s.Fajr, true
	case Sunrise:
		return s.Sunrise, true
	case Dhuhr:
		return s.Dhuhr, true
	case Asr:
		return s.Asr, true
	case Maghrib:
		return s.Maghrib, true
	case Isha:
		return s.Isha, true
	}
	return time.Time{}, false
}

// CurrentPrayer returns the most recent event at or before the given
// instant, or NoPrayer before Fajr.
func (s *Schedule) CurrentPrayer(at time.Time) Prayer {
	timings := s.Timings()
	for i := len(timings) - 1; i >= 0; i-- {
		if !at.Before(timings[i].At) {
			return timings[i].Event
		}
	}
	return NoPrayer
}

// NextPrayer returns the first event after the given instant, or
// NoPrayer once the day's Isha has passed.
func (s *Schedule) NextPrayer(at time.Time) Prayer {
	for _, timing := range s.Timings() {
		if at.Before(timing.At) {
			return timing.Event
		}
	}
	return NoPrayer
}
