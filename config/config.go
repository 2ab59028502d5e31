package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the manifest name looked up in the working directory.
const DefaultFile = "compiler.yaml"

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// Module is the project manifest.
type Module struct {
	Package          string `yaml:"package" toml:"package"`
	Version          string `yaml:"version" toml:"version"`
	Source           string `yaml:"source" toml:"source"`
	EntryPoint       string `yaml:"entry_point" toml:"entry_point"`
	Strict           bool   `yaml:"strict" toml:"strict"`
	CollapseTypeRuns *bool  `yaml:"collapse_type_runs,omitempty" toml:"collapse_type_runs,omitempty"`
	LogLevel         string `yaml:"log_level" toml:"log_level"`
}

func Default(pkg string) Module {
	collapse := true
	return Module{
		Package:          pkg,
		Version:          "0.1.0",
		Source:           "main.src",
		EntryPoint:       "main",
		CollapseTypeRuns: &collapse,
		LogLevel:         "INFO",
	}
}

// Collapse reports whether type positions swallow runs of the same type name.
func (m Module) Collapse() bool {
	return m.CollapseTypeRuns == nil || *m.CollapseTypeRuns
}

func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

func Parse(data []byte, format Format) (Module, error) {
	var m Module

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return Module{}, tracerr.Wrap(fmt.Errorf("reading toml manifest: %w", err))
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Module{}, tracerr.Wrap(fmt.Errorf("reading yaml manifest: %w", err))
		}
	}

	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return Module{}, err
	}
	return m, nil
}

func Load(path string) (Module, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Module{}, tracerr.Wrap(err)
	}
	return Parse(data, DetectFormat(path))
}

func (m *Module) applyDefaults() {
	d := Default(m.Package)
	if m.Version == "" {
		m.Version = d.Version
	}
	if m.Source == "" {
		m.Source = d.Source
	}
	if m.EntryPoint == "" {
		m.EntryPoint = d.EntryPoint
	}
	if m.LogLevel == "" {
		m.LogLevel = d.LogLevel
	}
}

func (m Module) Validate() error {
	if m.Package == "" {
		return tracerr.Errorf("manifest has no package name")
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return tracerr.Wrap(fmt.Errorf("manifest version %q: %w", m.Version, err))
	}
	return nil
}

// Marshal encodes the manifest in the format its path asks for.
func (m Module) Marshal(format Format) ([]byte, error) {
	if format == FormatTOML {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(m); err != nil {
			return nil, tracerr.Wrap(err)
		}
		return []byte(b.String()), nil
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return out, nil
}

// Write creates path with the manifest, refusing to overwrite an existing file.
func (m Module) Write(path string) error {
	out, err := m.Marshal(DetectFormat(path))
	if err != nil {
		return err
	}

	fi, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	if _, err := fi.Write(out); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}
