// Command waqt is a terminal UI and CLI for daily prayer times.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/waqtapp/waqt/internal/astro"
	"github.com/waqtapp/waqt/internal/logging"
	"github.com/waqtapp/waqt/internal/salat"
	"github.com/waqtapp/waqt/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode bool
	jsonPath    string
	qiblaMode   bool
)

func main() {
	lat := flag.Float64("lat", 0, "Observer latitude in degrees (south negative)")
	lon := flag.Float64("lon", 0, "Observer longitude in degrees (west negative)")
	methodName := flag.String("method", "MuslimWorldLeague", "Calculation method: "+strings.Join(salat.MethodNames(), ", "))
	madhabName := flag.String("madhab", "shafi", "Asr shadow convention (shafi, hanafi)")
	ruleName := flag.String("high-lat-rule", "middleOfTheNight", "High latitude rule (middleOfTheNight, seventhOfTheNight, twilightAngle)")
	shafaqName := flag.String("shafaq", "general", "Twilight glow for MoonsightingCommittee Isha (general, ahmer, abyad)")
	ishaInterval := flag.Int("isha-interval", 0, "Fix Isha at minutes after Maghrib, overriding the angle")
	zoneName := flag.String("tz", "", "IANA timezone for display (default system local)")
	dateStr := flag.String("date", "", "Date to compute, YYYY-MM-DD (default today)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a text table instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON schedule to file (use - for stdout)")
	flag.BoolVar(&qiblaMode, "qibla", false, "Print the qibla bearing and exit")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	if *lat < -90 || *lat > 90 {
		fmt.Fprintf(os.Stderr, "Error: latitude %v out of range [-90, 90]\n", *lat)
		os.Exit(2)
	}
	if *lon < -180 || *lon > 180 {
		fmt.Fprintf(os.Stderr, "Error: longitude %v out of range [-180, 180]\n", *lon)
		os.Exit(2)
	}
	coords := astro.Coordinates{Latitude: *lat, Longitude: *lon}

	if qiblaMode {
		fmt.Printf("%.2f\n", salat.Qibla(coords))
		return
	}

	params, ok := salat.MethodByName(*methodName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown method %q (choose from %s)\n",
			*methodName, strings.Join(salat.MethodNames(), ", "))
		os.Exit(2)
	}
	if err := applyConventions(&params, *madhabName, *ruleName, *shafaqName, *ishaInterval); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	zone := resolveZone(*zoneName, logger)

	date := astro.DateOf(time.Now().In(zone))
	if *dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *dateStr, zone)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad date %q, want YYYY-MM-DD\n", *dateStr)
			os.Exit(2)
		}
		date = astro.DateOf(parsed)
	}

	logger.Debug("Computing %s at %s with %s", date, coords, params.Method)

	// Headless mode: no TUI
	headless := summaryMode || jsonPath != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(date, coords, params, zone); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(coords, params, zone, date)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// applyConventions folds the convention flags into the method preset.
func applyConventions(params *salat.CalculationParameters, madhab, rule, shafaq string, ishaInterval int) error {
	switch madhab {
	case "shafi":
		params.Madhab = salat.Shafi
	case "hanafi":
		params.Madhab = salat.Hanafi
	default:
		return fmt.Errorf("unknown madhab %q (shafi, hanafi)", madhab)
	}

	switch rule {
	case "middleOfTheNight":
		params.HighLatitudeRule = salat.MiddleOfTheNight
	case "seventhOfTheNight":
		params.HighLatitudeRule = salat.SeventhOfTheNight
	case "twilightAngle":
		params.HighLatitudeRule = salat.TwilightAngle
	default:
		return fmt.Errorf("unknown high latitude rule %q", rule)
	}

	switch shafaq {
	case "general":
		params.Shafaq = salat.ShafaqGeneral
	case "ahmer":
		params.Shafaq = salat.ShafaqAhmer
	case "abyad":
		params.Shafaq = salat.ShafaqAbyad
	default:
		return fmt.Errorf("unknown shafaq %q (general, ahmer, abyad)", shafaq)
	}

	if ishaInterval < 0 {
		return fmt.Errorf("isha-interval %d is negative", ishaInterval)
	}
	if ishaInterval > 0 {
		params.IshaInterval = ishaInterval
	}
	return nil
}

// resolveZone loads the display timezone. Unknown names degrade to UTC
// rather than failing, so schedules still come out.
func resolveZone(name string, logger *logging.Logger) *time.Location {
	if name == "" {
		return time.Local
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("Unknown timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return zone
}

// runHeadless prints the schedule without starting the TUI.
func runHeadless(date astro.Date, coords astro.Coordinates, params salat.CalculationParameters, zone *time.Location) error {
	s, err := salat.Times(date, coords, params)
	if err != nil {
		return err
	}

	// Night markers need tomorrow's schedule, which can fail on its own
	// near the polar envelope. The day's times still print without them.
	var markers *salat.NightMarkers
	if m, err := salat.Night(s); err == nil {
		markers = &m
	}

	if jsonPath != "" {
		export := salat.ExportSchedule(s, markers, zone)
		if jsonPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(jsonPath)
			if err != nil {
				return fmt.Errorf("create JSON file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if summaryMode || jsonPath == "" {
		salat.WriteSummaryTable(os.Stdout, s, markers, zone)
	}
	return nil
}
