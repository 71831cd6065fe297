package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/waqtapp/waqt/internal/salat"
)

// Schedule display colors
const (
	colorActive   = "#7CFC00" // lawn green - the prayer we are inside now
	colorUpcoming = "#FFD700" // gold - the next prayer
	colorPassed   = "#666688" // slate - already passed today
	colorNeutral  = "250"     // other days, no highlight
)

// RenderSchedulePanel renders one day's prayer rows. now drives the
// current/next highlight and is only meaningful when the panel shows
// today.
// Format:
//
//	Fajr      05:41
//	Sunrise   07:18   ◀ now
//	Dhuhr     12:06
func RenderSchedulePanel(s *salat.Schedule, zone *time.Location, now time.Time) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	current := s.CurrentPrayer(now)
	next := s.NextPrayer(now)

	var lines []string
	for _, timing := range s.Timings() {
		line := labelStyle.Render(fmt.Sprintf("%-9s", timing.Label))
		clock := timing.At.In(zone).Format("15:04")

		switch timing.Event {
		case current:
			line += colorText(colorActive, clock) + dimStyle.Render("   ◀ now")
		case next:
			line += colorText(colorUpcoming, clock)
		default:
			if timing.At.Before(now) {
				line += colorText(colorPassed, clock)
			} else {
				line += colorText(colorNeutral, clock)
			}
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RenderNightPanel renders the night subdivision markers.
func RenderNightPanel(markers salat.NightMarkers, zone *time.Location) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

	lines := []string{
		labelStyle.Render(fmt.Sprintf("%-9s", "Midnight")) +
			colorText(colorNeutral, markers.Middle.In(zone).Format("15:04")),
		labelStyle.Render(fmt.Sprintf("%-9s", "Last 1/3")) +
			colorText(colorNeutral, markers.LastThird.In(zone).Format("15:04")),
	}
	return strings.Join(lines, "\n")
}

// RenderCountdown renders the time remaining until the next prayer, or
// an empty string once the day's schedule is exhausted.
func RenderCountdown(s *salat.Schedule, now time.Time) string {
	next := s.NextPrayer(now)
	if next == salat.NoPrayer {
		return ""
	}

	at, _ := s.TimeFor(next)
	remaining := at.Sub(now).Round(time.Minute)
	if remaining < 0 {
		remaining = 0
	}

	h := int(remaining.Hours())
	m := int(remaining.Minutes()) % 60

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	var clock string
	if h > 0 {
		clock = fmt.Sprintf("%dh %02dm", h, m)
	} else {
		clock = fmt.Sprintf("%dm", m)
	}
	return dimStyle.Render(next.String()+" in ") + colorText(colorUpcoming, clock)
}

// RenderQibla renders the qibla bearing with a compass arrow.
func RenderQibla(bearing float64) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return dimStyle.Render("qibla: ") + colorText(colorNeutral, fmt.Sprintf("%.1f° %s", bearing, compassArrow(bearing)))
}

// compassArrow maps a bearing to one of eight arrow glyphs.
func compassArrow(bearing float64) string {
	arrows := []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}
	idx := int((bearing+22.5)/45) % 8
	return arrows[idx]
}

// colorText applies a foreground color to text.
func colorText(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
