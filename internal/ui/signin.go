package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewSignIn renders the sign-in screen
func (m Model) viewSignIn() string {
	title := titleStyle.Render("⛅ Wardrobe Terminal")
	subtitle := mutedStyle.Render("What to wear for today's weather")

	listBox := inputBoxStyle
	if m.signInField == fieldPreference {
		listBox = activeInputBoxStyle
	}

	nameBox := inputBoxStyle
	if m.signInField == fieldName {
		nameBox = activeInputBoxStyle
	}

	emailBox := inputBoxStyle
	if m.signInField == fieldEmail {
		emailBox = activeInputBoxStyle
	}

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, listBox.Render(m.signInList.View()))
	sections = append(sections, nameBox.Render(m.nameInput.View()))
	sections = append(sections, emailBox.Render(m.emailInput.View()))

	if m.signingIn {
		sections = append(sections, "", m.spinner.View()+" Signing in...")
	} else if m.signInMessage != "" {
		sections = append(sections, "", signInMessageStyle(m.signInMessage).Render(m.signInMessage))
	}

	help := helpStyle.Render("Tab: Next field • Enter: Select / Sign in • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func signInMessageStyle(message string) lipgloss.Style {
	if strings.HasSuffix(message, "successfully!") {
		return successStyle
	}
	return errorStyle
}
