package versionsync

import (
	"regexp"
	"strings"

	"github.com/indaco/pnpmsync/internal/manifest"
	"github.com/indaco/pnpmsync/internal/toolchain"
)

// DefaultPattern splits a constraint into its comparator prefix and the
// version that follows: major.minor.patch plus an optional pre-release.
// Build metadata such as a corepack "+sha512..." hash is ignored.
const DefaultPattern = `^(\D*)(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)`

// DefaultBootstrapScript is the preinstall guard that becomes redundant once
// the manifest pins pnpm through packageManager.
const DefaultBootstrapScript = "npx -y only-allow pnpm"

// Options are the immutable settings a Syncer is built with.
type Options struct {
	// ManifestName is the file searched for, "package.json".
	ManifestName string

	// EngineField holds the tool constraint, "engines.pnpm".
	EngineField string

	// PackageManagerField holds "<identifier><version>", "packageManager".
	PackageManagerField string

	// ToolIdentifier is the required packageManager prefix, "pnpm@".
	ToolIdentifier string

	// Pattern must have two capture groups: comparator prefix and version.
	Pattern *regexp.Regexp

	// ToolCommand prints the installed tool version.
	ToolCommand toolchain.Command

	// SyncRuntime also pins the host runtime and drops the bootstrap script.
	SyncRuntime bool

	// RuntimeField receives the runtime constraint, "engines.node".
	RuntimeField string

	// RuntimeCommand prints the runtime version.
	RuntimeCommand toolchain.Command

	// BootstrapField and BootstrapScript name the entry removed on sync.
	BootstrapField  string
	BootstrapScript string

	// Strict turns "already current" into an error instead of a no-op.
	Strict bool

	// DryRun computes the changes without writing them.
	DryRun bool

	// Check reports drift as an error and never writes.
	Check bool

	// Confirm, when set, is asked before the manifest is written.
	Confirm func(*Result) (bool, error)

	// Spin, when set, wraps the slow subprocess calls (e.g. with a spinner).
	Spin func(title string, action func() error) error
}

// DefaultOptions returns the settings for pinning pnpm in package.json.
func DefaultOptions() Options {
	return Options{
		ManifestName:        manifest.FileName,
		EngineField:         "engines.pnpm",
		PackageManagerField: "packageManager",
		ToolIdentifier:      "pnpm@",
		Pattern:             regexp.MustCompile(DefaultPattern),
		ToolCommand:         toolchain.ParseCommand("pnpm --version", false),
		SyncRuntime:         true,
		RuntimeField:        "engines.node",
		RuntimeCommand:      toolchain.ParseCommand("node --version", true),
		BootstrapField:      "preinstall",
		BootstrapScript:     DefaultBootstrapScript,
	}
}

// toolName is the identifier without its separator, "pnpm".
func (o Options) toolName() string {
	return strings.TrimRight(o.ToolIdentifier, "@")
}

func (o Options) spin(title string, action func() error) error {
	if o.Spin == nil {
		return action()
	}
	return o.Spin(title, action)
}
