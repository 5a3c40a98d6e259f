package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ngmaloney/wardrobe-terminal/internal/conditions"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
	"github.com/ngmaloney/wardrobe-terminal/internal/wardrobe"
)

// viewHome renders the Home screen
func (m Model) viewHome() string {
	var sections []string
	sections = append(sections, renderTabs(StateHome), "")

	switch {
	case m.loading:
		sections = append(sections, m.spinner.View()+" Loading weather data...")
	case m.fetchErr != nil:
		sections = append(sections, errorStyle.Render("Error: "+m.fetchErr.Error()))
	case m.report == nil:
		sections = append(sections, mutedStyle.Render("No weather data available"))
	default:
		sections = append(sections, m.renderReport()...)
	}

	help := helpStyle.Render(fmt.Sprintf("U: Show %s • R: Refresh • Tab: Settings • Q: Quit", m.unit.Toggle().Symbol()))
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderReport renders the fetched snapshot in the selected unit
func (m Model) renderReport() []string {
	snap := m.report.Snapshot
	isCelsius := m.unit.IsCelsius()

	var sections []string

	header := cityStyle.Render(snap.City) + "  " + mutedStyle.Render("["+m.unit.Symbol()+"]")
	sections = append(sections, header)

	// Current conditions
	sections = append(sections,
		sectionHeaderStyle.Render("Right now"),
		valueStyle.Render(conditions.Title(snap.Conditions.Description)),
	)

	feelsLike := fmt.Sprintf("%s  %s %s   %s",
		conditions.EmojiFor(snap.Conditions.Description),
		labelStyle.Render("Feels Like"),
		temperatureStyle.Render(units.FormatTemp(snap.FeelsLike, isCelsius)),
		mutedStyle.Render(fmt.Sprintf("L: %s  H: %s",
			units.FormatTemp(snap.Low, isCelsius),
			units.FormatTemp(snap.High, isCelsius))),
	)
	sections = append(sections, feelsLike, "")

	sections = append(sections, sectionBoxStyle.Render(renderRecommendation(snap, isCelsius)))

	// Hourly forecast
	if len(m.report.Hourly) > 0 {
		sections = append(sections,
			sectionHeaderStyle.Render("Today"),
			renderHourly(m.report.Hourly, isCelsius, chartWidth(m.width)),
		)
	}

	sections = append(sections,
		sectionHeaderStyle.Render("Conditions"),
		labelStyle.Render("Wind: ")+valueStyle.Render(snap.Conditions.WindSpeed),
		labelStyle.Render("UV Index: ")+valueStyle.Render(snap.Conditions.UVIndex),
		labelStyle.Render("Humidity: ")+valueStyle.Render(snap.Conditions.Humidity),
	)

	if !m.report.FetchedAt.IsZero() {
		sections = append(sections, "", mutedStyle.Render("Updated "+humanize.Time(m.report.FetchedAt)))
	}

	return sections
}

// renderRecommendation renders the backend's outfit, or a locally derived
// one when the backend sent none
func renderRecommendation(snap models.WeatherSnapshot, isCelsius bool) string {
	var lines []string
	lines = append(lines, preferenceStyle(snap.UserPreference).Render(snap.UserPreference.Summary()))

	rec := snap.ClothingRecommendation
	if rec.IsEmpty() {
		items := wardrobe.Recommend(
			units.Display(snap.FeelsLike, isCelsius),
			isCelsius,
			snap.Conditions.Description,
			snap.UserPreference,
		)
		lines = append(lines, recommendationRow("Suggested:", strings.Join(items, ", ")))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		recommendationRow("Top:", rec.InnerTop),
		recommendationRow("Outerwear:", rec.Outerwear),
		recommendationRow("Bottoms:", rec.Bottoms),
	)
	if len(rec.Extras) > 0 {
		lines = append(lines, recommendationRow("Remember!", strings.Join(rec.Extras, ", ")))
	}

	return strings.Join(lines, "\n")
}

func recommendationRow(label, value string) string {
	return labelStyle.Render(label) + " " + valueStyle.Render(value)
}
