package salat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ScheduleExport is the JSON-serializable representation of one day's
// schedule.
type ScheduleExport struct {
	Date         string         `json:"date"`
	Timezone     string         `json:"timezone"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Method       string         `json:"method"`
	Madhab       string         `json:"madhab"`
	Times        []TimingExport `json:"times"`
	Night        *NightExport   `json:"night,omitempty"`
	QiblaDegrees float64        `json:"qibla_degrees"`
}

// TimingExport is a JSON-friendly schedule entry.
type TimingExport struct {
	Name  string `json:"name"`
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

// NightExport carries the night subdivision markers.
type NightExport struct {
	Middle    string `json:"middle"`
	LastThird string `json:"last_third"`
}

// ExportSchedule converts a schedule to an exportable format. markers
// may be nil when the next day's schedule could not be computed.
func ExportSchedule(s *Schedule, markers *NightMarkers, zone *time.Location) *ScheduleExport {
	export := &ScheduleExport{
		Date:         s.Date.String(),
		Timezone:     zone.String(),
		Latitude:     s.Coordinates.Latitude,
		Longitude:    s.Coordinates.Longitude,
		Method:       s.Parameters.Method,
		Madhab:       s.Parameters.Madhab.String(),
		QiblaDegrees: Qibla(s.Coordinates),
	}

	for _, timing := range s.Timings() {
		export.Times = append(export.Times, TimingExport{
			Name:  timing.Label,
			UTC:   timing.At.UTC().Format(time.RFC3339),
			Local: timing.At.In(zone).Format("15:04"),
		})
	}

	if markers != nil {
		export.Night = &NightExport{
			Middle:    markers.Middle.In(zone).Format("15:04"),
			LastThird: markers.LastThird.In(zone).Format("15:04"),
		}
	}

	return export
}

// WriteJSON writes the schedule export as indented JSON.
func (e *ScheduleExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes a plain text table for headless use.
func WriteSummaryTable(w io.Writer, s *Schedule, markers *NightMarkers, zone *time.Location) {
	fmt.Fprintf(w, "Prayer times for %s (%s)\n", s.Date, zone)
	fmt.Fprintf(w, "%s, %s method\n", s.Coordinates, s.Parameters.Method)
	fmt.Fprintln(w, strings.Repeat("─", 40))

	for _, timing := range s.Timings() {
		fmt.Fprintf(w, "%-10s %s\n", timing.Label, timing.At.In(zone).Format("15:04"))
	}

	if markers != nil {
		fmt.Fprintln(w, strings.Repeat("─", 40))
		fmt.Fprintf(w, "%-10s %s\n", "Midnight", markers.Middle.In(zone).Format("15:04"))
		fmt.Fprintf(w, "%-10s %s\n", "Last 1/3", markers.LastThird.In(zone).Format("15:04"))
	}

	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "Qibla      %.1f°\n", Qibla(s.Coordinates))
}
