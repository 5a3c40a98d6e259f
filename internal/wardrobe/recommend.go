// Package wardrobe derives a clothing list from temperature and conditions.
// The backend normally sends its own recommendation; this is the local fallback.
package wardrobe

import (
	"strings"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
)

// preferenceBias shifts the perceived temperature before bucketing (°C)
const preferenceBias = 3.0

// bucket is a half-open temperature range [min, max)
type bucket struct {
	max      float64
	garments []string
}

// Buckets in ascending order; the last one is open-ended.
var buckets = []bucket{
	{max: 0, garments: []string{"Heavy winter coat", "Scarf", "Gloves", "Winter hat"}},
	{max: 10, garments: []string{"Warm coat", "Light scarf", "Long sleeves"}},
	{max: 20, garments: []string{"Light jacket", "Long sleeves"}},
	{max: 25, garments: []string{"T-shirt", "Light sweater"}},
}

var warmest = []string{"T-shirt", "Shorts"}

// conditionExtra adds garments when the keyword appears in the conditions text
type conditionExtra struct {
	keyword  string
	garments []string
}

// Checked in this order; every match appends.
var conditionExtras = []conditionExtra{
	{keyword: "rain", garments: []string{"Umbrella", "Waterproof jacket"}},
	{keyword: "snow", garments: []string{"Snow boots", "Waterproof gloves"}},
	{keyword: "wind", garments: []string{"Windbreaker"}},
}

// Recommend returns base garments for the biased feels-like temperature
// followed by any condition extras. feelsLike is in the display unit.
func Recommend(feelsLike float64, isCelsius bool, conditionsText string, pref models.Preference) []string {
	celsius := feelsLike
	if !isCelsius {
		celsius = units.FahrenheitToCelsius(feelsLike)
	}
	biased := celsius + bias(pref)

	var items []string
	items = append(items, baseGarments(biased)...)

	text := strings.ToLower(conditionsText)
	for _, extra := range conditionExtras {
		if strings.Contains(text, extra.keyword) {
			items = append(items, extra.garments...)
		}
	}

	return items
}

func bias(pref models.Preference) float64 {
	switch pref {
	case models.PreferenceGetsColdEasily:
		return -preferenceBias
	case models.PreferenceGetsHotEasily:
		return preferenceBias
	default:
		return 0
	}
}

func baseGarments(celsius float64) []string {
	for _, b := range buckets {
		if celsius < b.max {
			return b.garments
		}
	}
	return warmest
}
