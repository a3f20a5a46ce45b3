package versionsync

import (
	"context"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/manifest"
	"github.com/indaco/pnpmsync/internal/semver"
	"github.com/indaco/pnpmsync/internal/toolchain"
)

// Change records one field edit. Removed changes have an empty New.
type Change struct {
	Field   string `json:"field"`
	Old     string `json:"old,omitempty"`
	New     string `json:"new,omitempty"`
	Removed bool   `json:"removed,omitempty"`
}

// Plan is the outcome of reconciling a manifest with the installed tool.
type Plan struct {
	Previous  string           `json:"previous"`
	Installed string           `json:"installed"`
	Runtime   string           `json:"runtime,omitempty"`
	Direction semver.Direction `json:"direction"`
	Changes   []Change         `json:"changes,omitempty"`
	Current   bool             `json:"current"`
}

// Reconcile brings m in line with installed. engine is the validated engine
// constraint; its prefix is kept on every rewritten constraint.
//
// When installed already matches, Reconcile returns a Current plan and leaves
// m alone, or fails with AlreadyCurrent in strict mode. The runtime version
// is queried before anything is edited, so a failure leaves m untouched.
func (s *Syncer) Reconcile(ctx context.Context, m *manifest.Manifest, installed string, engine VersionSpec) (*Plan, error) {
	o := s.opts
	plan := &Plan{
		Previous:  engine.Version,
		Installed: installed,
		Direction: semver.CompareStrings(engine.Version, installed),
	}

	if sameVersion(installed, engine.Version) {
		if o.Strict {
			return plan, core.NewError(core.CodeAlreadyCurrent,
				"already using %s %s, nothing to do", o.toolName(), installed).WithPath(m.Path)
		}
		plan.Current = true
		return plan, nil
	}

	if o.SyncRuntime {
		runtime, err := s.queryRuntimeVersion(ctx)
		if err != nil {
			return plan, err
		}
		plan.Runtime = runtime
	}

	edits := []Change{
		{Field: o.EngineField, New: engine.Prefix + installed},
		{Field: o.PackageManagerField, New: o.ToolIdentifier + installed},
	}
	if o.SyncRuntime {
		edits = append(edits, Change{Field: o.RuntimeField, New: engine.Prefix + plan.Runtime})
	}

	for _, c := range edits {
		old, _ := m.String(c.Field)
		if old == c.New {
			continue
		}
		if err := m.Set(c.Field, c.New); err != nil {
			return plan, core.WrapError(core.CodeManifestParse, err, "failed to update manifest").WithPath(m.Path)
		}
		c.Old = old
		plan.Changes = append(plan.Changes, c)
	}

	if o.SyncRuntime && o.BootstrapField != "" {
		if script, ok := m.String(o.BootstrapField); ok && script == o.BootstrapScript {
			if err := m.Delete(o.BootstrapField); err != nil {
				return plan, core.WrapError(core.CodeManifestParse, err, "failed to update manifest").WithPath(m.Path)
			}
			plan.Changes = append(plan.Changes, Change{Field: o.BootstrapField, Old: script, Removed: true})
		}
	}

	plan.Current = len(plan.Changes) == 0
	return plan, nil
}

func (s *Syncer) queryRuntimeVersion(ctx context.Context) (string, error) {
	var version string
	err := s.opts.spin("Checking "+s.opts.RuntimeCommand.Name+" version", func() error {
		v, err := toolchain.QueryVersion(ctx, s.runner, s.opts.RuntimeCommand)
		version = v
		return err
	})
	return version, err
}

// sameVersion compares two versions ignoring build metadata, falling back to
// a textual comparison when either does not parse.
func sameVersion(a, b string) bool {
	va, errA := semver.ParseVersion(a)
	vb, errB := semver.ParseVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Compare(vb) == 0
}
