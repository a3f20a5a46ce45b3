package config

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/discovery"
	"github.com/indaco/pnpmsync/internal/manifest"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by Load.
const (
	EnvConfig    = "PNPMSYNC_CONFIG"
	EnvStrict    = "PNPMSYNC_STRICT"
	EnvNoRuntime = "PNPMSYNC_NO_RUNTIME"
)

// DefaultFileNames are looked up in order in each directory searched by Load.
var DefaultFileNames = []string{".pnpmsync.yaml", ".pnpmsync.yml", ".pnpmsync.toml"}

// ToolConfig overrides how the package manager is pinned and queried.
type ToolConfig struct {
	Identifier string `yaml:"identifier,omitempty" toml:"identifier,omitempty"`
	Engine     string `yaml:"engine,omitempty" toml:"engine,omitempty"`
	Command    string `yaml:"command,omitempty" toml:"command,omitempty"`
}

// RuntimeConfig overrides the runtime (node) pin.
type RuntimeConfig struct {
	Engine  string `yaml:"engine,omitempty" toml:"engine,omitempty"`
	Command string `yaml:"command,omitempty" toml:"command,omitempty"`
	Sync    *bool  `yaml:"sync,omitempty" toml:"sync,omitempty"`
}

// BootstrapConfig names the preinstall guard removed on sync.
type BootstrapConfig struct {
	Field  string `yaml:"field,omitempty" toml:"field,omitempty"`
	Script string `yaml:"script,omitempty" toml:"script,omitempty"`
}

// Config is the on-disk configuration. Empty fields keep their defaults.
type Config struct {
	Manifest  string          `yaml:"manifest,omitempty" toml:"manifest,omitempty"`
	Tool      ToolConfig      `yaml:"tool,omitempty" toml:"tool,omitempty"`
	Runtime   RuntimeConfig   `yaml:"runtime,omitempty" toml:"runtime,omitempty"`
	Pattern   string          `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Strict    *bool           `yaml:"strict,omitempty" toml:"strict,omitempty"`
	Bootstrap BootstrapConfig `yaml:"bootstrap,omitempty" toml:"bootstrap,omitempty"`
	Theme     string          `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Source is the file the config was read from, empty when none was found.
	Source string `yaml:"-" toml:"-"`
}

// Load reads the configuration for a run started in dir.
//
// An explicit path (or PNPMSYNC_CONFIG) must exist. Otherwise Load walks from
// dir up to the directory holding the nearest package.json and uses the first
// of DefaultFileNames it meets; the closest directory wins. Without a
// package.json above dir only dir itself is searched. A missing file yields
// an empty Config. Environment overrides are applied last.
func Load(ctx context.Context, fsys core.FileSystem, dir, explicit string) (*Config, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}

	cfg := &Config{}
	if explicit != "" {
		data, err := fsys.ReadFile(ctx, explicit)
		if err != nil {
			return nil, core.WrapError(core.CodeConfig, err, "failed to read config file").WithPath(explicit)
		}
		if err := decode(explicit, data, cfg); err != nil {
			return nil, err
		}
		cfg.Source = explicit
	} else if err := loadNearest(ctx, fsys, dir, cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadNearest(ctx context.Context, fsys core.FileSystem, dir string, cfg *Config) error {
	for _, d := range searchDirs(ctx, fsys, dir) {
		for _, name := range DefaultFileNames {
			path := filepath.Join(d, name)
			data, err := fsys.ReadFile(ctx, path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return core.WrapError(core.CodeConfig, err, "failed to read config file").WithPath(path)
			}
			if err := decode(path, data, cfg); err != nil {
				return err
			}
			cfg.Source = path
			return nil
		}
	}
	return nil
}

// searchDirs lists dir and its ancestors up to the project root, the
// directory of the nearest package.json.
func searchDirs(ctx context.Context, fsys core.FileSystem, dir string) []string {
	start, err := filepath.Abs(dir)
	if err != nil {
		return []string{dir}
	}
	dirs := []string{start}

	found, err := discovery.NewService(fsys).FindNearest(ctx, start, manifest.FileName)
	if err != nil {
		return dirs
	}
	root := filepath.Dir(found)
	for d := start; d != root; {
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
		dirs = append(dirs, d)
	}
	return dirs
}

// decode picks the format from the file extension; anything but .toml is YAML.
func decode(path string, data []byte, cfg *Config) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	} else {
		err = yaml.NewDecoder(bytes.NewReader(data), yaml.Strict()).Decode(cfg)
	}
	// An empty YAML document decodes to io.EOF.
	if err != nil && !errors.Is(err, io.EOF) {
		return core.WrapError(core.CodeConfig, err, "invalid config file").WithPath(path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStrict); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return core.NewError(core.CodeConfig, "%s must be a boolean, got %q", EnvStrict, v)
		}
		c.Strict = &b
	}
	if v := os.Getenv(EnvNoRuntime); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return core.NewError(core.CodeConfig, "%s must be a boolean, got %q", EnvNoRuntime, v)
		}
		if b {
			sync := false
			c.Runtime.Sync = &sync
		}
	}
	return nil
}
