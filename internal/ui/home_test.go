package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

func TestPreferenceStyle(t *testing.T) {
	tests := []struct {
		pref models.Preference
		want string
	}{
		{models.PreferenceGetsColdEasily, "#2196F3"},
		{models.PreferenceGetsHotEasily, "#FF5722"},
		{models.PreferenceNeutral, "#666666"},
		{models.Preference("unknown"), "#666666"},
	}

	for _, tt := range tests {
		got := preferenceStyle(tt.pref).GetForeground()
		if got != lipgloss.Color(tt.want) {
			t.Errorf("preferenceStyle(%q) foreground = %v, want %s", tt.pref, got, tt.want)
		}
	}
}

func TestRenderRecommendation_Backend(t *testing.T) {
	snap := sampleReport().Snapshot

	got := renderRecommendation(snap, true)

	for _, want := range []string{"You get cold easily.", "Top:", "Long sleeves", "Outerwear:", "Rain jacket", "Bottoms:", "Jeans", "Remember!", "Umbrella"} {
		if !strings.Contains(got, want) {
			t.Errorf("recommendation missing %q, got:\n%s", want, got)
		}
	}
}

func TestRenderRecommendation_NoExtras(t *testing.T) {
	snap := sampleReport().Snapshot
	snap.ClothingRecommendation.Extras = nil

	if got := renderRecommendation(snap, true); strings.Contains(got, "Remember!") {
		t.Errorf("extras row should be hidden, got:\n%s", got)
	}
}

func TestRenderRecommendation_LocalFallback(t *testing.T) {
	snap := sampleReport().Snapshot
	snap.ClothingRecommendation = models.ClothingRecommendation{}
	snap.UserPreference = models.PreferenceNeutral
	snap.FeelsLike = 22

	for _, isCelsius := range []bool{true, false} {
		got := renderRecommendation(snap, isCelsius)
		for _, want := range []string{"Suggested:", "T-shirt", "Light sweater", "Umbrella", "Waterproof jacket"} {
			if !strings.Contains(got, want) {
				t.Errorf("isCelsius=%v: fallback missing %q, got:\n%s", isCelsius, want, got)
			}
		}
	}
}

func TestHourlyRow(t *testing.T) {
	entries := sampleReport().Hourly

	got := hourlyRow(entries, false)

	// 10°C -> 50°F, 11°C -> 51.8°F -> 52°
	for _, want := range []string{"9 AM", "10 AM", "11 AM", "50°", "52°", "🌧️", "☁️", "☀️"} {
		if !strings.Contains(got, want) {
			t.Errorf("hourly row missing %q, got:\n%s", want, got)
		}
	}
}

func TestHourlyRow_Truncates(t *testing.T) {
	var entries []models.HourlyForecastEntry
	for i := 0; i < maxHourlyCells+3; i++ {
		entries = append(entries, models.HourlyForecastEntry{Time: "T" + string(rune('a'+i)), FeelsLike: float64(i)})
	}

	got := hourlyRow(entries, true)
	if strings.Contains(got, "T"+string(rune('a'+maxHourlyCells))) {
		t.Error("hourly row should show at most maxHourlyCells entries")
	}
}

func TestHourlyChart(t *testing.T) {
	if got := hourlyChart(sampleReport().Hourly[:1], true, 40); got != "" {
		t.Errorf("single entry chart = %q, want empty", got)
	}

	if got := hourlyChart(sampleReport().Hourly, true, 40); strings.TrimSpace(got) == "" {
		t.Error("expected a chart for several entries")
	}
}

func TestChartWidth(t *testing.T) {
	if got := chartWidth(10); got != 20 {
		t.Errorf("chartWidth(10) = %d, want 20", got)
	}
	if got := chartWidth(200); got != maxHourlyCells*hourlyCellSize {
		t.Errorf("chartWidth(200) = %d, want %d", got, maxHourlyCells*hourlyCellSize)
	}
}
