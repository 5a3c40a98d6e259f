package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// FetchWeather retrieves the current snapshot, and the hourly forecast when the
// backend sends the nested format. It never retries.
func (c *Client) FetchWeather(ctx context.Context, email string) (*models.WeatherReport, error) {
	if email == "" {
		return nil, ErrNoSession
	}

	path := "/weather?" + url.Values{"email": {email}}.Encode()
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("%w: status %d", ErrCouldNotRetrieve, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return decodeWeather(body, time.Now())
}

// decodeWeather accepts the flat snapshot or the
// {current_weather_data, hourly_forecast_data} envelope
func decodeWeather(body []byte, fetchedAt time.Time) (*models.WeatherReport, error) {
	var envelope weatherEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	current := envelope.Current
	if current == nil {
		current = &snapshotPayload{}
		if err := json.Unmarshal(body, current); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	snapshot, err := current.toModel()
	if err != nil {
		return nil, err
	}

	report := &models.WeatherReport{
		Snapshot:  snapshot,
		FetchedAt: fetchedAt,
	}
	if envelope.Hourly != nil {
		report.Hourly = envelope.Hourly.List
	}

	return report, nil
}

// Internal types for backend responses

type weatherEnvelope struct {
	Current *snapshotPayload `json:"current_weather_data"`
	Hourly  *struct {
		List []models.HourlyForecastEntry `json:"hourly_forecast_list"`
	} `json:"hourly_forecast_data"`
}

type snapshotPayload struct {
	City                   string                        `json:"city"`
	FeelsLike              *float64                      `json:"feelsLike"`
	Low                    float64                       `json:"low"`
	High                   float64                       `json:"high"`
	Conditions             *models.Conditions            `json:"conditions"`
	UserPreference         models.Preference             `json:"userPreference"`
	ClothingRecommendation models.ClothingRecommendation `json:"clothingRecommendation"`
}

func (p *snapshotPayload) toModel() (models.WeatherSnapshot, error) {
	if p.FeelsLike == nil {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: missing feelsLike", ErrMalformedResponse)
	}
	if p.Conditions == nil {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: missing conditions", ErrMalformedResponse)
	}

	return models.WeatherSnapshot{
		City:                   p.City,
		FeelsLike:              *p.FeelsLike,
		Low:                    p.Low,
		High:                   p.High,
		Conditions:             *p.Conditions,
		UserPreference:         p.UserPreference,
		ClothingRecommendation: p.ClothingRecommendation,
	}, nil
}
