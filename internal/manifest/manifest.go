// Package manifest loads, edits and writes back a project's package.json.
//
// Field access uses dot notation ("engines.pnpm"). Edits are applied to the
// raw document with sjson so key order and untouched values survive, and the
// document is re-indented on write with the indentation detected at load time.
package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the conventional manifest name.
const FileName = "package.json"

// Manifest is an in-memory package.json document.
type Manifest struct {
	// Path is the file the manifest was loaded from and is written back to.
	Path string

	// Indent is the indentation unit detected in the source file.
	// Empty means the source had no indented lines (minified).
	Indent string

	// Perm is the mode of the source file, reused on write.
	Perm os.FileMode

	data []byte
}

// utf8BOM is written by some Windows editors ahead of the JSON text.
var utf8BOM = []byte("\xEF\xBB\xBF")

// Parse builds a Manifest from raw bytes. The document must be a JSON object.
// A leading UTF-8 byte order mark is dropped and not written back on Save.
func Parse(path string, data []byte) (*Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return nil, core.NewError(core.CodeManifestParse, "invalid JSON").WithPath(path)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, core.NewError(core.CodeManifestParse, "top-level value is not an object").WithPath(path)
	}

	return &Manifest{
		Path:   path,
		Indent: DetectIndent(data),
		Perm:   0o644,
		data:   bytes.Clone(data),
	}, nil
}

// Load reads and parses the manifest at path.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(core.CodeManifestNotFound, err, "manifest not found").WithPath(path)
		}
		return nil, core.WrapError(core.CodeManifestParse, err, "failed to read manifest").WithPath(path)
	}

	m, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	if info, err := fsys.Stat(ctx, path); err == nil {
		m.Perm = info.Mode().Perm()
	}

	return m, nil
}

// String returns the string stored at field. ok is false when the field is
// absent or holds a non-string value.
func (m *Manifest) String(field string) (value string, ok bool) {
	res := gjson.GetBytes(m.data, field)
	if !res.Exists() || res.Type != gjson.String {
		return "", false
	}
	return res.String(), true
}

// Has reports whether field exists, whatever its type.
func (m *Manifest) Has(field string) bool {
	return gjson.GetBytes(m.data, field).Exists()
}

// Set stores a string value at field, creating intermediate objects as needed.
func (m *Manifest) Set(field, value string) error {
	updated, err := sjson.SetBytes(m.data, field, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", field, err)
	}
	m.data = updated
	return nil
}

// Delete removes field. Deleting an absent field is a no-op.
func (m *Manifest) Delete(field string) error {
	if !m.Has(field) {
		return nil
	}
	updated, err := sjson.DeleteBytes(m.data, field)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", field, err)
	}
	m.data = updated
	return nil
}

// Bytes serializes the document with the detected indentation and a trailing newline.
func (m *Manifest) Bytes() []byte {
	var out []byte
	if m.Indent == "" {
		out = pretty.Ugly(m.data)
	} else {
		// Width 0 keeps every array expanded, one element per line.
		out = pretty.PrettyOptions(m.data, &pretty.Options{Indent: m.Indent, Width: 0})
	}
	out = bytes.TrimRight(out, "\r\n")
	return append(out, '\n')
}

// Save overwrites the manifest file. There is no backup and no atomic rename:
// a failed write may leave the file truncated.
func (m *Manifest) Save(ctx context.Context, fsys core.FileSystem) error {
	perm := m.Perm
	if perm == 0 {
		perm = core.PermOwnerRW
	}
	if err := fsys.WriteFile(ctx, m.Path, m.Bytes(), perm); err != nil {
		return core.WrapError(core.CodePersist, err, "failed to write manifest").WithPath(m.Path)
	}
	return nil
}

// DetectIndent returns the leading whitespace of the first indented line.
// In a formatted JSON document that line sits one level deep, so its prefix
// is the indentation unit.
func DetectIndent(data []byte) string {
	for line := range bytes.SplitSeq(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return ""
}
