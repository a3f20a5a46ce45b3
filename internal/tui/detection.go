package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are set by the common CI providers. Any non-empty value disables
// prompts.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"DRONE",
	"SEMAPHORE",
	"APPVEYOR",
	"CODEBUILD_BUILD_ID",
	"TF_BUILD",
}

// IsInteractive reports whether the confirmation prompt and the spinners may
// run: stdout must be a terminal and no CI environment variable may be set.
func IsInteractive() bool {
	tty := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
	return interactive(tty, os.Getenv)
}

func interactive(tty bool, getenv func(string) string) bool {
	if !tty {
		return false
	}
	for _, name := range ciEnvVars {
		if getenv(name) != "" {
			return false
		}
	}
	return true
}
