package config

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/toolchain"
	"github.com/indaco/pnpmsync/internal/tui"
	"github.com/indaco/pnpmsync/internal/versionsync"
)

// Validate checks the values that cannot be caught while decoding.
func (c *Config) Validate() error {
	if c.Manifest != "" && (filepath.IsAbs(c.Manifest) || strings.TrimSpace(c.Manifest) == "") {
		return c.invalid("manifest must be a relative file name, got %q", c.Manifest)
	}

	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return core.WrapError(core.CodeConfig, err, "pattern %q does not compile", c.Pattern).WithPath(c.Source)
		}
		if re.NumSubexp() != 2 {
			return c.invalid("pattern %q must have exactly 2 capture groups, has %d", c.Pattern, re.NumSubexp())
		}
	}

	fields := []struct{ key, value string }{
		{"tool.identifier", c.Tool.Identifier},
		{"tool.engine", c.Tool.Engine},
		{"tool.command", c.Tool.Command},
		{"runtime.engine", c.Runtime.Engine},
		{"runtime.command", c.Runtime.Command},
		{"bootstrap.field", c.Bootstrap.Field},
	}
	for _, f := range fields {
		if f.value != "" && strings.TrimSpace(f.value) == "" {
			return c.invalid("%s must not be blank", f.key)
		}
	}

	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		return c.invalid("unknown theme %q (valid: %s)", c.Theme, strings.Join(tui.ValidThemes, ", "))
	}

	return nil
}

func (c *Config) invalid(format string, args ...any) *core.Error {
	return core.NewError(core.CodeConfig, format, args...).WithPath(c.Source)
}

// Options validates c and layers it over versionsync.DefaultOptions.
func (c *Config) Options() (versionsync.Options, error) {
	opts := versionsync.DefaultOptions()
	if err := c.Validate(); err != nil {
		return opts, err
	}

	setString(&opts.ManifestName, c.Manifest)
	setString(&opts.ToolIdentifier, c.Tool.Identifier)
	setString(&opts.EngineField, c.Tool.Engine)
	setString(&opts.RuntimeField, c.Runtime.Engine)
	setString(&opts.BootstrapField, c.Bootstrap.Field)
	setString(&opts.BootstrapScript, c.Bootstrap.Script)

	if c.Tool.Command != "" {
		opts.ToolCommand = toolchain.ParseCommand(c.Tool.Command, false)
	}
	if c.Runtime.Command != "" {
		opts.RuntimeCommand = toolchain.ParseCommand(c.Runtime.Command, true)
	}
	if c.Runtime.Sync != nil {
		opts.SyncRuntime = *c.Runtime.Sync
	}
	if c.Strict != nil {
		opts.Strict = *c.Strict
	}
	if c.Pattern != "" {
		opts.Pattern = regexp.MustCompile(c.Pattern)
	}

	return opts, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
