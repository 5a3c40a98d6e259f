package backend

import (
	"context"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// WeatherClient defines the interface for fetching weather for a signed-in user
type WeatherClient interface {
	// FetchWeather issues exactly one request for the user's current weather
	FetchWeather(ctx context.Context, email string) (*models.WeatherReport, error)
}

// UserClient defines the interface for managing the backend user record
type UserClient interface {
	// CreateUser registers the user and returns the server's message
	CreateUser(ctx context.Context, user NewUser) (string, error)

	// UpdatePreference changes the user's temperature preference
	UpdatePreference(ctx context.Context, email string, pref models.Preference) error

	// DeleteUser removes the user record; called on sign-out
	DeleteUser(ctx context.Context, email string) error
}

// NewUser is the body of POST /users
type NewUser struct {
	Name                  string            `json:"name"`
	Email                 string            `json:"email"`
	PreferenceTemperature models.Preference `json:"preference_temperature"`
	GoogleOAuthToken      string            `json:"google_oauth_token"`
}
