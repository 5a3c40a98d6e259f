package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// preferenceStyle returns the style used to render a temperature preference
func preferenceStyle(pref models.Preference) lipgloss.Style {
	switch pref {
	case models.PreferenceGetsColdEasily:
		return coldPreferenceStyle
	case models.PreferenceGetsHotEasily:
		return hotPreferenceStyle
	case models.PreferenceNeutral:
		return neutralPreferenceStyle
	default:
		return neutralPreferenceStyle
	}
}

