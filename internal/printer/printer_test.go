package printer

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions return non-empty styled strings.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Faint", Faint, "test text"},
		{"Bold", Bold, "test text"},
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
		{"Info", Info, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)

			// Verify result is not empty
			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}

			// Verify result contains the original text
			// The styled output may or may not contain ANSI codes depending on terminal detection,
			// but it should at minimum contain the original text
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

// capture redirects the given stream (os.Stdout or os.Stderr) while fn runs.
func capture(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()
	old := *stream
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	*stream = w

	fn()

	w.Close()
	*stream = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// TestPrintFunctions verifies that each print function writes to the right stream.
func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
		stderr   bool
	}{
		{"PrintFaint", PrintFaint, false},
		{"PrintBold", PrintBold, false},
		{"PrintSuccess", PrintSuccess, false},
		{"PrintInfo", PrintInfo, false},
		{"PrintError", PrintError, true},
		{"PrintWarning", PrintWarning, true},
		{"PrintNotice", PrintNotice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr string
			stderr = capture(t, &os.Stderr, func() {
				stdout = capture(t, &os.Stdout, func() {
					tt.function("test text")
				})
			})

			output, other := stdout, stderr
			if tt.stderr {
				output, other = stderr, stdout
			}

			if !strings.Contains(output, "test text") {
				t.Errorf("%s() output does not contain input text. got %q", tt.name, output)
			}
			if !strings.HasSuffix(output, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
			if other != "" {
				t.Errorf("%s() wrote to the wrong stream: %q", tt.name, other)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	for _, got := range []string{Success("ok"), Error("ok"), Bold("ok"), Info("ok")} {
		if got != "ok" {
			t.Errorf("expected plain text with colors disabled, got %q", got)
		}
	}
}

// TestEmptyInput verifies that functions handle empty strings gracefully.
func TestEmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("")

			// Even with empty input, the function should return a string
			// (it may contain ANSI codes even for empty text)
			if result == "" {
				// This is acceptable - empty input may yield empty output
				return
			}
		})
	}
}
