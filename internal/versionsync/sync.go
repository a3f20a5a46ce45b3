// Package versionsync keeps a project's pnpm pin in package.json in line
// with the pnpm installed on the host.
//
// A run locates the nearest manifest, checks that engines.pnpm and
// packageManager agree, asks the installed pnpm for its version and rewrites
// both fields (plus engines.node and the only-allow bootstrap script) when
// they are behind or ahead. Nothing is written until every check has passed.
package versionsync

import (
	"context"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/discovery"
	"github.com/indaco/pnpmsync/internal/manifest"
	"github.com/indaco/pnpmsync/internal/semver"
	"github.com/indaco/pnpmsync/internal/toolchain"
)

// Result describes a completed run.
type Result struct {
	Path string `json:"path"`
	Plan
	Updated bool `json:"updated"`
	DryRun  bool `json:"dryRun,omitempty"`
	Checked bool `json:"checked,omitempty"`
}

// Syncer runs the version synchronization.
type Syncer struct {
	fs        core.FileSystem
	runner    core.CommandRunner
	discovery *discovery.Service
	opts      Options
}

// New creates a Syncer. Use DefaultOptions as the starting point for opts.
func New(fs core.FileSystem, runner core.CommandRunner, opts Options) *Syncer {
	return &Syncer{
		fs:        fs,
		runner:    runner,
		discovery: discovery.NewService(fs),
		opts:      opts,
	}
}

// Options returns the settings the Syncer was built with.
func (s *Syncer) Options() Options {
	return s.opts
}

// QueryInstalledVersion asks the installed tool for its version.
func (s *Syncer) QueryInstalledVersion(ctx context.Context) (string, error) {
	var version string
	err := s.opts.spin("Checking "+s.opts.ToolCommand.Name+" version", func() error {
		v, err := toolchain.QueryVersion(ctx, s.runner, s.opts.ToolCommand)
		version = v
		return err
	})
	return version, err
}

// LocatePackageManifest finds the nearest manifest at or above startDir.
func (s *Syncer) LocatePackageManifest(ctx context.Context, startDir string) (string, error) {
	return s.discovery.FindNearest(ctx, startDir, s.opts.ManifestName)
}

// LoadManifest reads and parses the manifest at path.
func (s *Syncer) LoadManifest(ctx context.Context, path string) (*manifest.Manifest, error) {
	return manifest.Load(ctx, s.fs, path)
}

// Persist writes m back to disk.
func (s *Syncer) Persist(ctx context.Context, m *manifest.Manifest) error {
	return m.Save(ctx, s.fs)
}

// Run performs a full synchronization starting the manifest search at startDir.
//
// On a check run with drift, or when confirmation is declined, Run returns
// both the computed Result and the error.
func (s *Syncer) Run(ctx context.Context, startDir string) (*Result, error) {
	path, err := s.LocatePackageManifest(ctx, startDir)
	if err != nil {
		return nil, err
	}

	m, err := s.LoadManifest(ctx, path)
	if err != nil {
		return nil, err
	}

	engine, _, err := s.ValidateManifest(m)
	if err != nil {
		return nil, err
	}

	installed, err := s.QueryInstalledVersion(ctx)
	if err != nil {
		return nil, err
	}

	if s.opts.Check && sameVersion(installed, engine.Version) {
		// A current manifest passes a check even in strict mode.
		return &Result{Path: path, Checked: true, Plan: Plan{
			Previous: engine.Version, Installed: installed, Direction: semver.Same, Current: true,
		}}, nil
	}

	plan, err := s.Reconcile(ctx, m, installed, engine)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path, Plan: *plan, DryRun: s.opts.DryRun, Checked: s.opts.Check}

	switch {
	case plan.Current:
		return result, nil
	case s.opts.Check:
		return result, core.NewError(core.CodeDrift,
			"%s pins %s %s but %s is installed", s.opts.EngineField, s.opts.toolName(), plan.Previous, installed).WithPath(path)
	case s.opts.DryRun:
		return result, nil
	}

	if s.opts.Confirm != nil {
		ok, err := s.opts.Confirm(result)
		if err != nil {
			return result, core.WrapError(core.CodeAborted, err, "confirmation failed")
		}
		if !ok {
			return result, core.NewError(core.CodeAborted, "update declined, %s left unchanged", path)
		}
	}

	if err := s.Persist(ctx, m); err != nil {
		return result, err
	}
	result.Updated = true

	return result, nil
}
