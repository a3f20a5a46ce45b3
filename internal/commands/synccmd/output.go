package synccmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/printer"
	"github.com/indaco/pnpmsync/internal/semver"
	"github.com/indaco/pnpmsync/internal/versionsync"
)

// OutputFormat controls how the sync result is displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a flag value to OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", core.NewError(core.CodeConfig, "unknown output format %q, use text or json", s)
	}
}

// Formatter renders sync results.
type Formatter struct {
	format OutputFormat
	tool   string
}

// NewFormatter creates a Formatter. identifier is the packageManager prefix
// ("pnpm@"), used to name the tool in messages.
func NewFormatter(format OutputFormat, identifier string) *Formatter {
	return &Formatter{format: format, tool: strings.TrimRight(identifier, "@")}
}

// FormatJSON renders the result as indented JSON.
func (f *Formatter) FormatJSON(r *versionsync.Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// FormatText renders an updated, dry-run or drifted result.
func (f *Formatter) FormatText(r *versionsync.Result) string {
	var sb strings.Builder

	switch {
	case r.Updated:
		fmt.Fprintf(&sb, "%s %s\n", printer.Success("Updated"), r.Path)
	case r.Checked:
		fmt.Fprintf(&sb, "%s %s\n", printer.Warning("Out of date"), r.Path)
	case r.DryRun:
		fmt.Fprintf(&sb, "%s %s %s\n", printer.Info("Would update"), r.Path, printer.Faint("(dry run)"))
	}

	sb.WriteString(f.Changes(r))
	sb.WriteString(printer.Faint(f.summary(r)))
	sb.WriteString("\n")

	return sb.String()
}

// Changes lists the field edits, one per line.
func (f *Formatter) Changes(r *versionsync.Result) string {
	var sb strings.Builder
	for _, c := range r.Changes {
		mark := printer.Success("✓")
		switch {
		case c.Removed:
			fmt.Fprintf(&sb, "  %s %s %s\n", mark, c.Field, printer.Faint(fmt.Sprintf("removed %q", c.Old)))
		case c.Old == "":
			fmt.Fprintf(&sb, "  %s %s %s\n", mark, c.Field, printer.Faint("added "+c.New))
		default:
			fmt.Fprintf(&sb, "  %s %s %s\n", mark, c.Field, printer.Faint(c.Old+" → "+c.New))
		}
	}
	return sb.String()
}

// AlreadyCurrent is the notice for a manifest that needs no change.
func (f *Formatter) AlreadyCurrent(r *versionsync.Result) string {
	return fmt.Sprintf("%s %s already pins %s %s, nothing to do", printer.Info("ℹ"), r.Path, f.tool, r.Installed)
}

func (f *Formatter) summary(r *versionsync.Result) string {
	s := fmt.Sprintf("%s %s → %s", f.tool, r.Previous, r.Installed)
	if r.Direction == semver.Upgrade || r.Direction == semver.Downgrade {
		s += fmt.Sprintf(" (%s)", r.Direction)
	}
	return s
}
