// Package identity abstracts the sign-in provider that yields the user's e-mail
// and identity token.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

var (
	ErrSignInCancelled    = errors.New("sign-in cancelled")
	ErrInProgress         = errors.New("sign-in already in progress")
	ErrServiceUnavailable = errors.New("sign-in service unavailable")
	ErrNoPreviousSignIn   = errors.New("no previous sign-in")
	ErrInvalidEmail       = errors.New("invalid e-mail address")
)

// Config is supplied once at startup
type Config struct {
	WebClientID   string   `yaml:"web_client_id"`
	IOSClientID   string   `yaml:"ios_client_id"`
	Scopes        []string `yaml:"scopes"`
	OfflineAccess bool     `yaml:"offline_access"`
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.WebClientID == "" {
		return fmt.Errorf("identity: web client ID is required")
	}
	return nil
}

// LoginHint carries what the user typed on the sign-in screen
type LoginHint struct {
	Name  string
	Email string
}

// Provider is the sign-in collaborator
type Provider interface {
	// HasPreviousSignIn reports whether a silent sign-in can be attempted
	HasPreviousSignIn(ctx context.Context) (bool, error)

	// SignIn performs an interactive sign-in
	SignIn(ctx context.Context, hint LoginHint) (*models.Account, error)

	// SignInSilently restores the previous sign-in without user interaction
	SignInSilently(ctx context.Context) (*models.Account, error)

	// SignOut forgets the signed-in account
	SignOut(ctx context.Context) error
}

// Message returns the user-visible text for a sign-in error
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSignInCancelled):
		return "Sign-in cancelled by user"
	case errors.Is(err, ErrInProgress):
		return "Sign-in in progress"
	case errors.Is(err, ErrServiceUnavailable):
		return "Sign-in service not available"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid e-mail address"
	default:
		return "Error signing in"
	}
}
