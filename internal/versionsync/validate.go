package versionsync

import (
	"regexp"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/manifest"
)

// VersionSpec is a constraint split into comparator prefix and version.
type VersionSpec struct {
	Prefix  string `json:"prefix"`
	Version string `json:"version"`
}

// String reassembles the constraint.
func (v VersionSpec) String() string {
	return v.Prefix + v.Version
}

// ParseSpec applies pattern to s. ok is false when s does not match.
func ParseSpec(pattern *regexp.Regexp, s string) (spec VersionSpec, ok bool) {
	m := pattern.FindStringSubmatch(s)
	if len(m) != 3 {
		return VersionSpec{}, false
	}
	return VersionSpec{Prefix: m[1], Version: m[2]}, true
}

// ValidateManifest checks that m pins the tool consistently and returns the
// parsed engine constraint and packageManager declaration.
//
// The packageManager identity is checked before the engine constraint is
// parsed, so a manifest declaring another tool fails with WrongTool whatever
// its engine value holds.
func (s *Syncer) ValidateManifest(m *manifest.Manifest) (engine, declared VersionSpec, err error) {
	o := s.opts

	rawEngine, ok := m.String(o.EngineField)
	if !ok || rawEngine == "" {
		return engine, declared, core.NewError(core.CodeNotPinned,
			"%s is not set, the project does not pin %s", o.EngineField, o.toolName()).WithPath(m.Path)
	}

	rawDeclared, ok := m.String(o.PackageManagerField)
	if !ok || rawDeclared == "" {
		return engine, declared, core.NewError(core.CodeNotDeclared,
			"%s is not set", o.PackageManagerField).WithPath(m.Path)
	}

	declared, ok = ParseSpec(o.Pattern, rawDeclared)
	if !ok {
		return engine, declared, core.NewError(core.CodeMalformedVersion,
			"%s value %q is not <name>@<major>.<minor>.<patch>", o.PackageManagerField, rawDeclared).WithPath(m.Path)
	}

	if declared.Prefix != o.ToolIdentifier {
		return engine, declared, core.NewError(core.CodeWrongTool,
			"%s is %q, expected it to start with %q", o.PackageManagerField, rawDeclared, o.ToolIdentifier).WithPath(m.Path)
	}

	engine, ok = ParseSpec(o.Pattern, rawEngine)
	if !ok {
		return engine, declared, core.NewError(core.CodeMalformedVersion,
			"%s value %q is not <prefix><major>.<minor>.<patch>", o.EngineField, rawEngine).WithPath(m.Path)
	}

	if engine.Version != declared.Version {
		return engine, declared, core.NewError(core.CodeVersionMismatch,
			"%s (%s) and %s (%s) disagree, align them before syncing",
			o.EngineField, engine.Version, o.PackageManagerField, declared.Version).WithPath(m.Path)
	}

	return engine, declared, nil
}
