package ui

import (
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/wardrobe-terminal/internal/conditions"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
)

const (
	chartHeight    = 8
	maxHourlyCells = 8
	hourlyCellSize = 9
)

// renderHourly renders the feels-like line chart above a time/icon row
func renderHourly(entries []models.HourlyForecastEntry, isCelsius bool, width int) string {
	var parts []string
	if chart := hourlyChart(entries, isCelsius, width); chart != "" {
		parts = append(parts, chart)
	}
	parts = append(parts, hourlyRow(entries, isCelsius))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// hourlyChart plots feels-like temperatures in the display unit.
// A line needs at least two points.
func hourlyChart(entries []models.HourlyForecastEntry, isCelsius bool, width int) string {
	if len(entries) < 2 {
		return ""
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = units.Display(e.FeelsLike, isCelsius)
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	lo--
	hi++

	chart := streamlinechart.New(width, chartHeight)
	chart.SetYRange(lo, hi)
	chart.SetViewYRange(lo, hi)

	// Stretch each hour across the chart width
	repeat := width / len(values)
	if repeat < 1 {
		repeat = 1
	}
	for _, v := range values {
		for i := 0; i < repeat; i++ {
			chart.Push(v)
		}
	}

	chart.Draw()
	return chart.View()
}

// hourlyRow renders time, icon and temperature for the first few hours
func hourlyRow(entries []models.HourlyForecastEntry, isCelsius bool) string {
	if len(entries) > maxHourlyCells {
		entries = entries[:maxHourlyCells]
	}

	cell := lipgloss.NewStyle().
		Width(hourlyCellSize).
		Align(lipgloss.Center)

	cells := make([]string, len(entries))
	for i, e := range entries {
		cells[i] = cell.Render(lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render(e.Time),
			conditions.EmojiFor(e.Description),
			valueStyle.Render(units.FormatTemp(e.FeelsLike, isCelsius)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func chartWidth(width int) int {
	w := width - 4
	if w > maxHourlyCells*hourlyCellSize {
		w = maxHourlyCells * hourlyCellSize
	}
	if w < 20 {
		w = 20
	}
	return w
}
