package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// viewSettings renders the Settings screen
func (m Model) viewSettings() string {
	var sections []string
	sections = append(sections, renderTabs(StateSettings), "")
	sections = append(sections, titleStyle.Render("Settings"))

	if m.session != nil {
		sections = append(sections, mutedStyle.Render("Signed in as "+m.session.Email))
	}
	sections = append(sections, "")

	sections = append(sections, m.settingsList.View())

	if m.preference != "" {
		sections = append(sections, preferenceStyle(m.preference).Render(m.preference.Summary()))
	}

	switch {
	case m.signingOut:
		sections = append(sections, "", mutedStyle.Render("Signing out..."))
	case m.updating:
		sections = append(sections, "", mutedStyle.Render("Updating preference..."))
	case m.settingsMessage == "Preference updated successfully!":
		sections = append(sections, "", successStyle.Render(m.settingsMessage))
	case m.settingsMessage != "":
		sections = append(sections, "", errorStyle.Render(m.settingsMessage))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Set preference • O: Sign out • Tab: Home • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
