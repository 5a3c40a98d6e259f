package models

import "time"

// Conditions holds the descriptive part of a snapshot as sent by the backend
type Conditions struct {
	Description string `json:"description"` // e.g., "light rain", "scattered clouds"
	WindSpeed   string `json:"windSpeed"`
	UVIndex     string `json:"uvIndex"`
	Humidity    string `json:"humidity"`
}

// ClothingRecommendation is the backend's precomputed outfit
type ClothingRecommendation struct {
	InnerTop  string   `json:"inner_top"`
	Outerwear string   `json:"outerwear"`
	Bottoms   string   `json:"bottoms"`
	Extras    []string `json:"extras"`
}

// IsEmpty reports whether the backend sent no recommendation at all
func (c ClothingRecommendation) IsEmpty() bool {
	return c.InnerTop == "" && c.Outerwear == "" && c.Bottoms == "" && len(c.Extras) == 0
}

// WeatherSnapshot represents current conditions for the signed-in user.
// All temperatures are Celsius.
type WeatherSnapshot struct {
	City                   string                 `json:"city"`
	FeelsLike              float64                `json:"feelsLike"`
	Low                    float64                `json:"low"`
	High                   float64                `json:"high"`
	Conditions             Conditions             `json:"conditions"`
	UserPreference         Preference             `json:"userPreference"`
	ClothingRecommendation ClothingRecommendation `json:"clothingRecommendation"`
}

// HourlyForecastEntry represents a single hour of the forecast
type HourlyForecastEntry struct {
	Time        string  `json:"time"`
	FeelsLike   float64 `json:"feelsLike"` // Celsius
	Description string  `json:"description"`
}

// WeatherReport is everything a single fetch yields
type WeatherReport struct {
	Snapshot  WeatherSnapshot
	Hourly    []HourlyForecastEntry // Chronological
	FetchedAt time.Time
}
