// Package conditions maps free-text weather descriptions to display glyphs
package conditions

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultEmoji is used when no rule matches
const DefaultEmoji = "🌤️"

type rule struct {
	keywords []string
	emoji    string
}

// Order matters: the first matching rule wins.
var rules = []rule{
	{keywords: []string{"clear"}, emoji: "☀️"},
	{keywords: []string{"cloud"}, emoji: "☁️"},
	{keywords: []string{"rain"}, emoji: "🌧️"},
	{keywords: []string{"snow"}, emoji: "❄️"},
	{keywords: []string{"thunder"}, emoji: "⛈️"},
	{keywords: []string{"mist", "fog"}, emoji: "🌫️"},
	{keywords: []string{"drizzle"}, emoji: "🌦️"},
}

// EmojiFor returns the glyph for a weather description
func EmojiFor(description string) string {
	text := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.emoji
			}
		}
	}
	return DefaultEmoji
}

// Title formats a description for display, e.g. "light rain" -> "Light Rain"
func Title(description string) string {
	return cases.Title(language.English).String(strings.TrimSpace(description))
}
