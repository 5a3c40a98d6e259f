package ui

import (
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// Message types for async operations

// focusMsg is sent when a screen gains focus
type focusMsg struct {
	state AppState
}

// weatherFetchedMsg is sent when a focus-triggered fetch completes.
// gen identifies the fetch so superseded results can be dropped.
type weatherFetchedMsg struct {
	gen    int
	report *models.WeatherReport
	err    error
}

// silentSignInMsg is sent when the startup silent sign-in completes
type silentSignInMsg struct {
	account *models.Account
	err     error
}

// signInFailedMsg is sent when the identity provider rejects a sign-in
type signInFailedMsg struct {
	err error
}

// userCreatedMsg is sent when the backend has answered the user registration
type userCreatedMsg struct {
	account *models.Account
	message string
	err     error
}

// preferenceUpdatedMsg is sent when the preference update completes
type preferenceUpdatedMsg struct {
	pref models.Preference
	err  error
}

// signedOutMsg is sent once sign-out side effects have run
type signedOutMsg struct{}
