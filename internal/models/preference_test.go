package models

import "testing"

func TestParsePreference(t *testing.T) {
	tests := []struct {
		input   string
		want    Preference
		wantErr bool
	}{
		{"gets_cold_easily", PreferenceGetsColdEasily, false},
		{"gets_hot_easily", PreferenceGetsHotEasily, false},
		{"neutral", PreferenceNeutral, false},
		{"Neutral", "", true},
		{"", "", true},
		{"freezing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreference(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreference(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreference(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreferences_Order(t *testing.T) {
	got := Preferences()
	want := []Preference{PreferenceGetsColdEasily, PreferenceGetsHotEasily, PreferenceNeutral}

	if len(got) != len(want) {
		t.Fatalf("len(Preferences()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Preferences()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPreference_Summary(t *testing.T) {
	tests := []struct {
		pref Preference
		want string
	}{
		{PreferenceGetsColdEasily, "You get cold easily."},
		{PreferenceGetsHotEasily, "You get hot easily."},
		{PreferenceNeutral, "Your temperature preference is neutral."},
		{Preference("unknown"), "Your temperature preference is neutral."},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			if got := tt.pref.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreference_Label(t *testing.T) {
	if got := PreferenceGetsColdEasily.Label(); got != "I get cold easily" {
		t.Errorf("Label() = %q, want 'I get cold easily'", got)
	}
	if got := PreferenceGetsHotEasily.Label(); got != "I get hot easily" {
		t.Errorf("Label() = %q, want 'I get hot easily'", got)
	}
	if got := PreferenceNeutral.Label(); got != "Neutral" {
		t.Errorf("Label() = %q, want 'Neutral'", got)
	}
}
