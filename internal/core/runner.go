package core

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// CommandRunner executes an external command and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSCommandRunner runs commands with os/exec.
type OSCommandRunner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewOSCommandRunner creates an OSCommandRunner with the default exec.CommandContext.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{execCommand: exec.CommandContext}
}

// Run executes name with args. Stderr is folded into the returned error.
func (r *OSCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := r.execCommand(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return stdout.Bytes(), fmt.Errorf("%s failed: %w", name, err)
	}
	return stdout.Bytes(), nil
}

var _ CommandRunner = (*OSCommandRunner)(nil)

// MockCommandRunner answers commands from a table keyed by the full command line.
type MockCommandRunner struct {
	mu      sync.Mutex
	outputs map[string]mockOutput
	calls   []string
}

type mockOutput struct {
	out string
	err error
}

// NewMockCommandRunner returns a runner that fails every command until stubbed.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{outputs: make(map[string]mockOutput)}
}

// Stub registers the output (and optional error) for a command line such as "pnpm --version".
func (m *MockCommandRunner) Stub(commandLine, out string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[commandLine] = mockOutput{out: out, err: err}
}

// Calls returns every command line that was run, in order.
func (m *MockCommandRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	line := strings.Join(append([]string{name}, args...), " ")

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, line)
	o, ok := m.outputs[line]
	if !ok {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return []byte(o.out), o.err
}

var _ CommandRunner = (*MockCommandRunner)(nil)
