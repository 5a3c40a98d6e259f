package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/wardrobe-terminal/internal/backend"
	"github.com/ngmaloney/wardrobe-terminal/internal/identity"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/prefs"
	"github.com/ngmaloney/wardrobe-terminal/internal/ui"
)

// This demo shows the UI with mock data and no backend
func main() {
	signedOut := flag.Bool("signed-out", false, "Start on the sign-in screen")
	flag.Parse()

	log.SetOutput(io.Discard)

	store := newMemoryStore()
	if !*signedOut {
		if err := prefs.SaveSession(store, "demo@example.com"); err != nil {
			fmt.Printf("Error seeding demo session: %v\n", err)
			os.Exit(1)
		}
	}

	provider, err := identity.NewLocalProvider(identity.Config{WebClientID: "demo"}, store)
	if err != nil {
		fmt.Printf("Error configuring sign-in: %v\n", err)
		os.Exit(1)
	}

	demo := &demoBackend{preference: models.PreferenceGetsColdEasily}

	m := ui.NewModel(ui.Deps{
		Weather:  demo,
		Users:    demo,
		Identity: provider,
		Store:    store,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// demoBackend serves a fixed Seattle report and accepts every user call
type demoBackend struct {
	mu         sync.Mutex
	preference models.Preference
}

func (d *demoBackend) FetchWeather(ctx context.Context, email string) (*models.WeatherReport, error) {
	// Long enough to see the loading state
	select {
	case <-time.After(400 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	d.mu.Lock()
	pref := d.preference
	d.mu.Unlock()

	return &models.WeatherReport{
		Snapshot: models.WeatherSnapshot{
			City:      "Seattle",
			FeelsLike: 9.6,
			Low:       7.2,
			High:      13.9,
			Conditions: models.Conditions{
				Description: "light rain",
				WindSpeed:   "14 km/h",
				UVIndex:     "1",
				Humidity:    "87%",
			},
			UserPreference: pref,
			ClothingRecommendation: models.ClothingRecommendation{
				InnerTop:  "Long sleeve shirt",
				Outerwear: "Waterproof jacket",
				Bottoms:   "Jeans",
				Extras:    []string{"Umbrella", "Waterproof shoes"},
			},
		},
		Hourly: []models.HourlyForecastEntry{
			{Time: "9 AM", FeelsLike: 8.1, Description: "light rain"},
			{Time: "10 AM", FeelsLike: 9.0, Description: "moderate rain"},
			{Time: "11 AM", FeelsLike: 10.4, Description: "overcast clouds"},
			{Time: "12 PM", FeelsLike: 11.8, Description: "broken clouds"},
			{Time: "1 PM", FeelsLike: 12.9, Description: "scattered clouds"},
			{Time: "2 PM", FeelsLike: 13.5, Description: "clear sky"},
			{Time: "3 PM", FeelsLike: 13.1, Description: "clear sky"},
			{Time: "4 PM", FeelsLike: 11.7, Description: "mist"},
		},
		FetchedAt: time.Now(),
	}, nil
}

func (d *demoBackend) CreateUser(ctx context.Context, user backend.NewUser) (string, error) {
	d.mu.Lock()
	d.preference = user.PreferenceTemperature
	d.mu.Unlock()
	return "User created", nil
}

func (d *demoBackend) UpdatePreference(ctx context.Context, email string, pref models.Preference) error {
	d.mu.Lock()
	d.preference = pref
	d.mu.Unlock()
	return nil
}

func (d *demoBackend) DeleteUser(ctx context.Context, email string) error {
	return nil
}

// memoryStore keeps demo settings for the life of the process
type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}
