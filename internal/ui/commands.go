package ui

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/wardrobe-terminal/internal/backend"
	"github.com/ngmaloney/wardrobe-terminal/internal/identity"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/prefs"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
)

const (
	fetchTimeout   = 30 * time.Second
	signInTimeout  = 60 * time.Second
	requestTimeout = 15 * time.Second
)

// focus emits a focusMsg for state
func focus(state AppState) tea.Cmd {
	return func() tea.Msg {
		return focusMsg{state: state}
	}
}

// fetchWeather fetches the report for email. cancel is released once the
// request finishes; calling it earlier abandons the fetch.
func fetchWeather(ctx context.Context, cancel context.CancelFunc, client backend.WeatherClient, email string, gen int) tea.Cmd {
	return func() tea.Msg {
		defer cancel()

		report, err := client.FetchWeather(ctx, email)
		return weatherFetchedMsg{gen: gen, report: report, err: err}
	}
}

// restoreSignIn attempts a silent sign-in when the provider remembers one.
// A failed attempt forgets everything so the user starts clean.
func restoreSignIn(provider identity.Provider, store prefs.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signInTimeout)
		defer cancel()

		previous, err := provider.HasPreviousSignIn(ctx)
		if err != nil {
			log.Printf("Error checking sign in status: %v", err)
			if err := prefs.ClearSession(store); err != nil {
				log.Printf("Error clearing storage: %v", err)
			}
			return silentSignInMsg{err: err}
		}
		if !previous {
			return silentSignInMsg{}
		}

		account, err := provider.SignInSilently(ctx)
		if err != nil {
			log.Printf("Silent sign in failed: %v", err)
			if err := provider.SignOut(ctx); err != nil {
				log.Printf("Error signing out: %v", err)
			}
			if err := prefs.ClearSession(store); err != nil {
				log.Printf("Error clearing storage: %v", err)
			}
			return silentSignInMsg{err: err}
		}

		if err := prefs.SaveSession(store, account.Email); err != nil {
			log.Printf("Error saving session: %v", err)
		}

		return silentSignInMsg{account: account}
	}
}

// signIn runs the interactive sign-in and registers the user with the backend
func signIn(provider identity.Provider, users backend.UserClient, store prefs.Store, hint identity.LoginHint, pref models.Preference) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signInTimeout)
		defer cancel()

		account, err := provider.SignIn(ctx, hint)
		if err != nil {
			return signInFailedMsg{err: err}
		}

		message, err := users.CreateUser(ctx, backend.NewUser{
			Name:                  account.Name,
			Email:                 account.Email,
			PreferenceTemperature: pref,
			GoogleOAuthToken:      account.IDToken,
		})
		if err != nil {
			log.Printf("Server Error: %v", err)
			if err := provider.SignOut(ctx); err != nil {
				log.Printf("Error signing out: %v", err)
			}
			return userCreatedMsg{account: account, err: err}
		}

		if err := prefs.SaveSession(store, account.Email); err != nil {
			log.Printf("Error saving session: %v", err)
		}

		return userCreatedMsg{account: account, message: message, err: err}
	}
}

// updatePreference sends the new preference to the backend
func updatePreference(users backend.UserClient, email string, pref models.Preference) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := users.UpdatePreference(ctx, email, pref)
		if err != nil {
			log.Printf("Error updating preference: %v", err)
		}
		return preferenceUpdatedMsg{pref: pref, err: err}
	}
}

// signOut deletes the backend user, signs out of the provider and clears
// local storage. Each step is attempted even when an earlier one fails.
func signOut(users backend.UserClient, provider identity.Provider, store prefs.Store, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if email != "" {
			if err := users.DeleteUser(ctx, email); err != nil {
				log.Printf("Error signing out: %v", err)
			}
		}
		if err := provider.SignOut(ctx); err != nil {
			log.Printf("Error signing out: %v", err)
		}
		if err := prefs.ClearSession(store); err != nil {
			log.Printf("Error clearing storage: %v", err)
		}

		return signedOutMsg{}
	}
}

// saveUnit persists the unit without reporting back to the UI
func saveUnit(store prefs.Store, unit units.Unit) tea.Cmd {
	return func() tea.Msg {
		if err := prefs.SaveUnit(store, unit); err != nil {
			log.Printf("Error saving temperature preference: %v", err)
		}
		return nil
	}
}

// createUserMessage is the sign-in screen text for a registration result
func createUserMessage(err error) string {
	if err == nil {
		return "User created successfully!"
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Failed to create user"
	}
	return "Failed to connect to the server."
}
