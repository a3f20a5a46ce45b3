package version

import "testing"

func TestGetVersion(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	tests := []struct {
		set  string
		want string
	}{
		{"1.4.0", "1.4.0"},
		{"v2.0.0-rc.1", "2.0.0-rc.1"},
	}
	for _, tt := range tests {
		version = tt.set
		if got := GetVersion(); got != tt.want {
			t.Errorf("GetVersion() with %q = %q, want %q", tt.set, got, tt.want)
		}
	}

	version = ""
	if GetVersion() == "" {
		t.Error("GetVersion() should never be empty")
	}
}
