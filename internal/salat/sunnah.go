package salat

import "time"

// NightMarkers are linear subdivisions of the Maghrib to next-Fajr
// span. They are arithmetic on the schedule, not solver output.
type NightMarkers struct {
	// Middle is the midpoint of the night.
	Middle time.Time
	// LastThird is where the final third of the night begins.
	LastThird time.Time
}

// Night computes the markers following s, which requires the next
// day's Fajr and therefore the next day's schedule.
func Night(s *Schedule) (NightMarkers, error) {
	tomorrow, err := Times(s.Date.Add(1), s.Coordinates, s.Parameters)
	if err != nil {
		return NightMarkers{}, err
	}

	span := tomorrow.Fajr.Sub(s.Maghrib)
	return NightMarkers{
		Middle:    roundedMinute(s.Maghrib.Add(span / 2)),
		LastThird: roundedMinute(s.Maghrib.Add(span * 2 / 3)),
	}, nil
}
