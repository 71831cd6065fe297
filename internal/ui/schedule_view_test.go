package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/waqtapp/waqt/internal/astro"
	"github.com/waqtapp/waqt/internal/salat"
)

func testSchedule(t *testing.T) *salat.Schedule {
	t.Helper()
	coords := astro.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	s, err := salat.Times(astro.NewDate(2025, time.January, 15), coords, salat.MuslimWorldLeague())
	if err != nil {
		t.Fatalf("Times: %v", err)
	}
	return s
}

func TestRenderSchedulePanel(t *testing.T) {
	s := testSchedule(t)
	out := RenderSchedulePanel(s, time.UTC, s.Dhuhr)

	for _, label := range []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"} {
		if !strings.Contains(out, label) {
			t.Errorf("panel missing %q:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "◀ now") {
		t.Errorf("panel missing the now marker at Dhuhr:\n%s", out)
	}
	if got := strings.Count(out, "◀ now"); got != 1 {
		t.Errorf("now marker count = %d, want 1", got)
	}
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("panel has %d lines, want 6", got)
	}
}

func TestRenderSchedulePanelBeforeDawn(t *testing.T) {
	s := testSchedule(t)
	out := RenderSchedulePanel(s, time.UTC, s.Fajr.Add(-time.Hour))

	if strings.Contains(out, "◀ now") {
		t.Errorf("now marker shown before Fajr:\n%s", out)
	}
}

func TestRenderCountdown(t *testing.T) {
	s := testSchedule(t)

	out := RenderCountdown(s, s.Dhuhr.Add(-90*time.Minute))
	if !strings.Contains(out, "Dhuhr") || !strings.Contains(out, "1h 30m") {
		t.Errorf("countdown = %q, want Dhuhr in 1h 30m", out)
	}

	out = RenderCountdown(s, s.Asr.Add(-5*time.Minute))
	if !strings.Contains(out, "Asr") || !strings.Contains(out, "5m") {
		t.Errorf("countdown = %q, want Asr in 5m", out)
	}

	if out := RenderCountdown(s, s.Isha.Add(time.Minute)); out != "" {
		t.Errorf("countdown after Isha = %q, want empty", out)
	}
}

func TestCompassArrow(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "↑"},
		{45, "↗"},
		{90, "→"},
		{180, "↓"},
		{270, "←"},
		{359, "↑"},
		{58.5, "↗"},
	}
	for _, tt := range tests {
		if got := compassArrow(tt.bearing); got != tt.want {
			t.Errorf("compassArrow(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}

func TestRenderNightPanel(t *testing.T) {
	s := testSchedule(t)
	markers, err := salat.Night(s)
	if err != nil {
		t.Fatalf("Night: %v", err)
	}

	out := RenderNightPanel(markers, time.UTC)
	if !strings.Contains(out, "Midnight") || !strings.Contains(out, "Last 1/3") {
		t.Errorf("night panel missing labels:\n%s", out)
	}
}
