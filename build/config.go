package build

import (
	"path/filepath"

	"github.com/ardnew/sitegen/site"
)

// Defaults for the fields of [Config].
const (
	DefaultRoot   = "."
	DefaultData   = "assets/data/site-data.md"
	DefaultOutput = "scripts/site-data.js"
	DefaultGlobal = site.DefaultGlobal
	DefaultTarget = "*.html"
)

// Config describes a project. Relative paths are relative to Root.
type Config struct {
	// Root is the project root directory.
	Root string
	// Data is the site data document.
	Data string
	// Output is the generated data script.
	Output string
	// Global is the window property assigned by the data script.
	Global string
	// Title names the site in the data script header.
	Title string
	// Targets are doublestar patterns of the files to rewrite, matched
	// against Root with forward slashes. A plain path matches itself.
	Targets []string
	// Schema is an optional JSON Schema the site data must satisfy.
	Schema string
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns c with every empty field set to its default.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = DefaultRoot
	}

	if c.Data == "" {
		c.Data = DefaultData
	}

	if c.Output == "" {
		c.Output = DefaultOutput
	}

	if c.Global == "" {
		c.Global = DefaultGlobal
	}

	if len(c.Targets) == 0 {
		c.Targets = []string{DefaultTarget}
	}

	return c
}

// Path returns rel joined to the project root unless it is absolute.
func (c Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(c.Root, filepath.FromSlash(rel))
}
