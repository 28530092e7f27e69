package ui

import "testing"

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme(true) should select the no-color theme")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Error("NO_COLOR should select the no-color theme")
		}
	})
}

func TestColorAccessors(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Error("ColorGreen should return the active theme's success code")
	}
	if ColorReset() != DarkTheme.Reset {
		t.Error("ColorReset should return the active theme's reset code")
	}

	SetCurrentTheme(NoColorTheme)
	if ColorGreen() != "" || ColorBold() != "" || ColorReset() != "" {
		t.Error("no-color theme should produce empty escape codes")
	}
}
