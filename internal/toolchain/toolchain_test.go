package toolchain

import (
	"context"
	"errors"
	"testing"

	"github.com/indaco/pnpmsync/internal/core"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs int
		wantStr  string
	}{
		{"pnpm --version", "pnpm", 1, "pnpm --version"},
		{"  node   --version  ", "node", 1, "node --version"},
		{"corepack pnpm --version", "corepack", 2, "corepack pnpm --version"},
		{"", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := ParseCommand(tt.line, false)
			if cmd.Name != tt.wantName || len(cmd.Args) != tt.wantArgs {
				t.Errorf("ParseCommand(%q) = %+v", tt.line, cmd)
			}
			if got := cmd.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestQueryVersion(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		out      string
		runErr   error
		want     string
		wantCode core.Code
	}{
		{
			name: "pnpm output is trimmed",
			cmd:  ParseCommand("pnpm --version", false),
			out:  "8.5.0\n",
			want: "8.5.0",
		},
		{
			name: "node marker is stripped",
			cmd:  ParseCommand("node --version", true),
			out:  "v18.2.0\n",
			want: "18.2.0",
		},
		{
			name: "strip leaves bare digits alone",
			cmd:  ParseCommand("node --version", true),
			out:  "20.11.1",
			want: "20.11.1",
		},
		{
			name: "pre-release output",
			cmd:  ParseCommand("pnpm --version", false),
			out:  "9.0.0-rc.1\n",
			want: "9.0.0-rc.1",
		},
		{
			name:     "empty output",
			cmd:      ParseCommand("pnpm --version", false),
			out:      "\n",
			wantCode: core.CodeToolNotFound,
		},
		{
			name:     "command fails",
			cmd:      ParseCommand("pnpm --version", false),
			runErr:   errors.New("exec: \"pnpm\": executable file not found in $PATH"),
			wantCode: core.CodeToolNotFound,
		},
		{
			name:     "garbage output",
			cmd:      ParseCommand("pnpm --version", false),
			out:      "ERR_PNPM_BAD_VERSION\n",
			wantCode: core.CodeMalformedVersion,
		},
		{
			name:     "marker not stripped without StripPrefix",
			cmd:      ParseCommand("node --version", false),
			out:      "v18.2.0\n",
			want:     "v18.2.0",
		},
		{
			name:     "no command configured",
			cmd:      Command{},
			wantCode: core.CodeToolNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := core.NewMockCommandRunner()
			runner.Stub(tt.cmd.String(), tt.out, tt.runErr)

			got, err := QueryVersion(context.Background(), runner, tt.cmd)
			if tt.wantCode != "" {
				if core.CodeOf(err) != tt.wantCode {
					t.Fatalf("expected code %q, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("QueryVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
