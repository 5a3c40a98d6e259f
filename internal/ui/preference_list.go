package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// preferenceItem wraps a Preference for use in a list
type preferenceItem struct {
	pref     models.Preference
	selected bool
}

// FilterValue implements list.Item
func (p preferenceItem) FilterValue() string {
	return p.pref.Label()
}

// Title implements list.DefaultItem
func (p preferenceItem) Title() string {
	title := p.pref.Label()
	if p.selected {
		title += " ✓"
	}
	return preferenceStyle(p.pref).Render(title)
}

// Description implements list.DefaultItem
func (p preferenceItem) Description() string {
	return p.pref.Summary()
}

// preferenceItems builds the list items, marking selected
func preferenceItems(selected models.Preference) []list.Item {
	prefs := models.Preferences()
	items := make([]list.Item, len(prefs))
	for i, pref := range prefs {
		items[i] = preferenceItem{pref: pref, selected: pref == selected}
	}
	return items
}

// createPreferenceList creates a list.Model of temperature preferences
func createPreferenceList(title string, selected models.Preference, width, height int) list.Model {
	l := list.New(preferenceItems(selected), list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return l
}

// selectPreference marks pref in the list and moves the cursor to it
func selectPreference(l *list.Model, pref models.Preference) {
	l.SetItems(preferenceItems(pref))
	for i, p := range models.Preferences() {
		if p == pref {
			l.Select(i)
			return
		}
	}
}

// highlightedPreference is the preference under the list cursor
func highlightedPreference(l list.Model) (models.Preference, bool) {
	item, ok := l.SelectedItem().(preferenceItem)
	if !ok {
		return "", false
	}
	return item.pref, true
}
