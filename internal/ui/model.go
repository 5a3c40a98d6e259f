package ui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/wardrobe-terminal/internal/backend"
	"github.com/ngmaloney/wardrobe-terminal/internal/identity"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
	"github.com/ngmaloney/wardrobe-terminal/internal/prefs"
	"github.com/ngmaloney/wardrobe-terminal/internal/units"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSignIn   AppState = iota // Pick a preference and sign in
	StateHome                     // Current weather and clothing for the signed-in user
	StateSettings                 // Change preference or sign out
	StateError                    // Unrecoverable error
)

// signInField is the focused control on the sign-in screen
type signInField int

const (
	fieldPreference signInField = iota
	fieldName
	fieldEmail
	signInFieldCount
)

// Deps are the collaborators the UI talks to. All are required.
type Deps struct {
	Weather  backend.WeatherClient
	Users    backend.UserClient
	Identity identity.Provider
	Store    prefs.Store
}

func (d Deps) validate() error {
	switch {
	case d.Weather == nil:
		return errors.New("weather client not configured")
	case d.Users == nil:
		return errors.New("user client not configured")
	case d.Identity == nil:
		return errors.New("sign-in provider not configured")
	case d.Store == nil:
		return errors.New("local storage not configured")
	}
	return nil
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	deps Deps

	// Session
	session *models.UserSession
	unit    units.Unit

	// Sign-in
	signInList       list.Model
	nameInput        textinput.Model
	emailInput       textinput.Model
	signInField      signInField
	signInPreference models.Preference
	signingIn        bool
	signInMessage    string

	// Weather, fetched whenever Home or Settings gains focus
	report      *models.WeatherReport
	loading     bool
	fetchErr    error
	fetchGen    int
	cancelFetch context.CancelFunc

	// Settings
	settingsList    list.Model
	preference      models.Preference
	settingsMessage string
	updating        bool
	signingOut      bool

	spinner spinner.Model
}

// NewModel creates a new application model. A stored session skips sign-in.
func NewModel(deps Deps) Model {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100
	name.Width = 46

	email := textinput.New()
	email.Placeholder = "Email (e.g. you@example.com)"
	email.CharLimit = 254
	email.Width = 46

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		state:        StateSignIn,
		deps:         deps,
		unit:         units.Celsius,
		signInList:   createPreferenceList("Select your temperature preference", "", 50, listHeight),
		nameInput:    name,
		emailInput:   email,
		settingsList: createPreferenceList("Temperature Preference", "", 50, listHeight),
		spinner:      s,
	}

	if err := deps.validate(); err != nil {
		m.err = err
		m.state = StateError
		return m
	}

	m.unit = prefs.LoadUnit(deps.Store)

	session, err := prefs.LoadSession(deps.Store)
	if err != nil {
		log.Printf("Error loading session: %v", err)
	}
	if session != nil {
		m.session = session
		m.state = StateHome
	}

	return m
}

// Init starts the first screen
func (m Model) Init() tea.Cmd {
	switch m.state {
	case StateHome:
		return focus(StateHome)
	case StateSignIn:
		return restoreSignIn(m.deps.Identity, m.deps.Store)
	}
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.signInList.SetSize(listWidth(msg.Width), listHeight)
		m.settingsList.SetSize(listWidth(msg.Width), listHeight)
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case focusMsg:
		return m.handleFocus(msg)

	case weatherFetchedMsg:
		return m.handleWeatherFetched(msg), nil

	case silentSignInMsg:
		if msg.account == nil || m.state != StateSignIn {
			return m, nil
		}
		return m.completeSignIn(msg.account)

	case signInFailedMsg:
		m.signingIn = false
		m.signInMessage = identity.Message(msg.err)
		return m, nil

	case userCreatedMsg:
		m.signingIn = false
		m.signInMessage = createUserMessage(msg.err)
		if msg.err != nil {
			return m, nil
		}
		return m.completeSignIn(msg.account)

	case preferenceUpdatedMsg:
		m.updating = false
		if msg.err != nil {
			m.settingsMessage = "Failed to update preference"
			return m, nil
		}
		m.preference = msg.pref
		selectPreference(&m.settingsList, msg.pref)
		m.settingsMessage = "Preference updated successfully!"
		return m, nil

	case signedOutMsg:
		return m.resetToSignIn(), nil

	case spinner.TickMsg:
		if !m.loading && !m.signingIn {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.cancelPendingFetch()
			return m, tea.Quit
		}

		switch m.state {
		case StateSignIn:
			return m.handleSignInKey(keyMsg)
		case StateHome:
			return m.handleHomeKey(keyMsg)
		case StateSettings:
			return m.handleSettingsKey(keyMsg)
		case StateError:
			// Any key quits; there is nothing to return to
			return m, tea.Quit
		}
	}

	// Cursor blink and other component messages
	if m.state == StateSignIn {
		return m.updateSignInInput(msg)
	}

	return m, nil
}

// handleFocus starts the screen's fetch if it is still the active screen
func (m Model) handleFocus(msg focusMsg) (tea.Model, tea.Cmd) {
	if msg.state != m.state || m.session == nil {
		return m, nil
	}

	switch msg.state {
	case StateHome, StateSettings:
		cmd := m.startFetch()
		return m, cmd
	}
	return m, nil
}

// startFetch supersedes any in-flight fetch and starts a new one
func (m *Model) startFetch() tea.Cmd {
	m.cancelPendingFetch()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	m.cancelFetch = cancel
	m.loading = true
	m.fetchErr = nil

	return tea.Batch(
		fetchWeather(ctx, cancel, m.deps.Weather, m.session.Email, m.fetchGen),
		m.spinner.Tick,
	)
}

// cancelPendingFetch abandons the in-flight fetch. Its result, if it still
// arrives, carries an old generation and is dropped.
func (m *Model) cancelPendingFetch() {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	m.fetchGen++
	m.loading = false
}

// handleWeatherFetched applies a fetch result if it is the current one
func (m Model) handleWeatherFetched(msg weatherFetchedMsg) Model {
	if msg.gen != m.fetchGen {
		log.Printf("Dropping superseded weather fetch (generation %d, current %d)", msg.gen, m.fetchGen)
		return m
	}

	m.loading = false
	m.cancelFetch = nil

	if msg.err != nil {
		log.Printf("Error fetching weather: %v", msg.err)
		m.fetchErr = msg.err
		m.report = nil
		return m
	}

	m.report = msg.report
	if m.report != nil && m.report.Snapshot.UserPreference != "" {
		m.preference = m.report.Snapshot.UserPreference
		selectPreference(&m.settingsList, m.preference)
	}
	return m
}

// completeSignIn moves a signed-in user to Home
func (m Model) completeSignIn(account *models.Account) (tea.Model, tea.Cmd) {
	m.session = &models.UserSession{Email: account.Email}
	m.signingIn = false
	m.state = StateHome
	m.nameInput.Blur()
	m.emailInput.Blur()
	return m, focus(StateHome)
}

// resetToSignIn forgets everything tied to the signed-out user
func (m Model) resetToSignIn() Model {
	m.cancelPendingFetch()

	m.session = nil
	m.unit = units.Celsius
	m.report = nil
	m.fetchErr = nil

	m.preference = ""
	m.settingsMessage = ""
	m.updating = false
	m.signingOut = false
	selectPreference(&m.settingsList, "")

	m.signInPreference = ""
	m.signInMessage = ""
	m.signingIn = false
	m.nameInput.SetValue("")
	m.emailInput.SetValue("")
	selectPreference(&m.signInList, "")
	m.focusSignInField(fieldPreference)

	m.state = StateSignIn
	return m
}

// handleHomeKey handles keyboard input on the Home screen
func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.cancelPendingFetch()
		return m, tea.Quit
	case "tab":
		m.state = StateSettings
		m.settingsMessage = ""
		return m, focus(StateSettings)
	case "u":
		m.unit = m.unit.Toggle()
		return m, saveUnit(m.deps.Store, m.unit)
	case "r":
		return m, focus(StateHome)
	}
	return m, nil
}

// handleSettingsKey handles keyboard input on the Settings screen
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.cancelPendingFetch()
		return m, tea.Quit
	case "tab":
		m.state = StateHome
		return m, focus(StateHome)
	case "o":
		if m.signingOut {
			return m, nil
		}
		m.signingOut = true
		m.cancelPendingFetch()
		email := ""
		if m.session != nil {
			email = m.session.Email
		}
		return m, signOut(m.deps.Users, m.deps.Identity, m.deps.Store, email)
	case "enter":
		pref, ok := highlightedPreference(m.settingsList)
		if !ok || m.updating || m.session == nil {
			return m, nil
		}
		m.updating = true
		m.settingsMessage = ""
		return m, updatePreference(m.deps.Users, m.session.Email, pref)
	}

	var cmd tea.Cmd
	m.settingsList, cmd = m.settingsList.Update(msg)
	return m, cmd
}

// handleSignInKey handles keyboard input on the sign-in screen
func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.signingIn {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab:
		m.focusSignInField((m.signInField + 1) % signInFieldCount)
		return m, textinput.Blink
	case tea.KeyShiftTab:
		m.focusSignInField((m.signInField + signInFieldCount - 1) % signInFieldCount)
		return m, textinput.Blink
	case tea.KeyEnter:
		return m.handleSignInEnter()
	}

	if m.signInField == fieldPreference {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.signInList, cmd = m.signInList.Update(msg)
		return m, cmd
	}

	// Clear the message when typing
	m.signInMessage = ""
	return m.updateSignInInput(msg)
}

// handleSignInEnter selects, advances or submits depending on focus
func (m Model) handleSignInEnter() (tea.Model, tea.Cmd) {
	switch m.signInField {
	case fieldPreference:
		if pref, ok := highlightedPreference(m.signInList); ok {
			m.signInPreference = pref
			selectPreference(&m.signInList, pref)
			m.signInMessage = ""
		}
		m.focusSignInField(fieldName)
		return m, textinput.Blink
	case fieldName:
		m.focusSignInField(fieldEmail)
		return m, textinput.Blink
	}

	if m.signInPreference == "" {
		m.signInMessage = "Please select a temperature preference"
		return m, nil
	}

	m.signingIn = true
	m.signInMessage = ""
	hint := identity.LoginHint{
		Name:  m.nameInput.Value(),
		Email: m.emailInput.Value(),
	}
	return m, tea.Batch(
		signIn(m.deps.Identity, m.deps.Users, m.deps.Store, hint, m.signInPreference),
		m.spinner.Tick,
	)
}

// focusSignInField moves focus between the sign-in controls
func (m *Model) focusSignInField(field signInField) {
	m.signInField = field
	m.nameInput.Blur()
	m.emailInput.Blur()

	switch field {
	case fieldName:
		m.nameInput.Focus()
	case fieldEmail:
		m.emailInput.Focus()
	}
}

// updateSignInInput forwards msg to the focused text input
func (m Model) updateSignInInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.signInField {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSignIn:
		return m.viewSignIn()
	case StateHome:
		return m.viewHome()
	case StateSettings:
		return m.viewSettings()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, errorMsg)
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs renders the Home/Settings tab bar
func renderTabs(active AppState) string {
	home := tabStyle.Render("Home")
	settings := tabStyle.Render("Settings")

	switch active {
	case StateHome:
		home = activeTabStyle.Render("Home")
	case StateSettings:
		settings = activeTabStyle.Render("Settings")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, home, settings)
}

// listHeight fits every preference on one page
const listHeight = 12

func listWidth(width int) int {
	if width > 64 {
		return 60
	}
	if width < 24 {
		return 20
	}
	return width - 4
}
