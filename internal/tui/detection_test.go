package tui

import "testing"

func TestInteractive(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		env  map[string]string
		want bool
	}{
		{"terminal", true, nil, true},
		{"no terminal", false, nil, false},
		{"generic CI", true, map[string]string{"CI": "true"}, false},
		{"github actions", true, map[string]string{"GITHUB_ACTIONS": "true"}, false},
		{"azure pipelines", true, map[string]string{"TF_BUILD": "True"}, false},
		{"empty CI value", true, map[string]string{"CI": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := interactive(tt.tty, getenv); got != tt.want {
				t.Errorf("interactive(%v) = %v, want %v", tt.tty, got, tt.want)
			}
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractive() {
		t.Error("IsInteractive() should be false when CI is set")
	}
}
