package tui

import "testing"

func TestDetectMode_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"explicit non-interactive", "SPROCDIFF_NON_INTERACTIVE", "1"},
		{"ci convention", "CI", "true"},
		{"no color", "NO_COLOR", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if got := DetectMode(); got != ModeNonInteractive {
				t.Errorf("DetectMode() = %v, want ModeNonInteractive", got)
			}
			if IsInteractive() {
				t.Error("IsInteractive() = true under CI environment")
			}
		})
	}
}
