package models

import "fmt"

// Preference is the user's declared temperature sensitivity
type Preference string

const (
	PreferenceGetsColdEasily Preference = "gets_cold_easily"
	PreferenceGetsHotEasily  Preference = "gets_hot_easily"
	PreferenceNeutral        Preference = "neutral"
)

// Preferences returns every preference in display order
func Preferences() []Preference {
	return []Preference{
		PreferenceGetsColdEasily,
		PreferenceGetsHotEasily,
		PreferenceNeutral,
	}
}

// ParsePreference converts a wire value into a Preference
func ParsePreference(s string) (Preference, error) {
	for _, p := range Preferences() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown temperature preference %q", s)
}

// Label is the text shown on a selectable preference option
func (p Preference) Label() string {
	switch p {
	case PreferenceGetsColdEasily:
		return "I get cold easily"
	case PreferenceGetsHotEasily:
		return "I get hot easily"
	default:
		return "Neutral"
	}
}

// Summary describes the preference back to the user.
// Anything unrecognised reads as neutral.
func (p Preference) Summary() string {
	switch p {
	case PreferenceGetsColdEasily:
		return "You get cold easily."
	case PreferenceGetsHotEasily:
		return "You get hot easily."
	default:
		return "Your temperature preference is neutral."
	}
}
