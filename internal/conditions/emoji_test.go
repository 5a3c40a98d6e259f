package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"clear sky", "☀️"},
		{"Scattered Clouds", "☁️"},
		{"light rain", "🌧️"},
		{"Heavy SNOW", "❄️"},
		{"thunderstorm", "⛈️"},
		{"mist", "🌫️"},
		{"Patchy fog", "🌫️"},
		{"drizzle", "🌦️"},
		{"", DefaultEmoji},
		{"sunny", DefaultEmoji},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, EmojiFor(tt.description))
		})
	}
}

func TestEmojiFor_Priority(t *testing.T) {
	// "cloud" is checked before "rain"
	assert.Equal(t, "☁️", EmojiFor("Partly Cloudy with rain"))
	// "clear" is checked before everything else
	assert.Equal(t, "☀️", EmojiFor("rain clearing later"))
	// "rain" before "thunder"
	assert.Equal(t, "🌧️", EmojiFor("thunderstorm with heavy rain"))
	// "rain" matches inside "drizzle and rain" before drizzle is reached
	assert.Equal(t, "🌧️", EmojiFor("drizzle and rain"))
	// "snow" before "fog"
	assert.Equal(t, "❄️", EmojiFor("freezing fog, snow showers"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Light Rain", Title("light rain"))
	assert.Equal(t, "Overcast Clouds", Title("  overcast clouds "))
	assert.Equal(t, "", Title(""))
}
