package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const testData = `---
title: Launch Day
team:
  lead: Ada
  size: 3
note: null
---
`

// writeProject creates files below a new temporary root and returns it.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

// testProject returns a Project rooted at root with default paths.
func testProject(root string) Project {
	return Project{Root: root}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()

	if ktx := kongContextFrom(ctx); ktx != nil {
		t.Errorf("kongContextFrom() = %v, want nil", ktx)
	}

	if p := projectFrom(ctx); p.Root != "" || len(p.Target) != 0 {
		t.Errorf("projectFrom() = %+v, want zero", p)
	}

	if w := stdoutFrom(ctx); w != os.Stdout {
		t.Errorf("stdoutFrom() = %v, want os.Stdout", w)
	}
}

func TestContextValues(t *testing.T) {
	var buf bytes.Buffer

	p := Project{Root: "site", Target: []string{"a.html"}}
	ctx := WithStdout(WithProject(context.Background(), p), &buf)

	if got := projectFrom(ctx); got.Root != "site" || got.Target[0] != "a.html" {
		t.Errorf("projectFrom() = %+v, want %+v", got, p)
	}

	if w := stdoutFrom(ctx); w != &buf {
		t.Errorf("stdoutFrom() = %v, want buffer", w)
	}
}

func TestProjectConfig(t *testing.T) {
	p := Project{
		Root:   "r",
		Data:   "d.md",
		Output: "o.js",
		Global: "G",
		Title:  "T",
		Target: []string{"x.html"},
		Schema: "s.json",
	}

	cfg := p.Config()
	if cfg.Root != "r" || cfg.Data != "d.md" || cfg.Output != "o.js" ||
		cfg.Global != "G" || cfg.Title != "T" || cfg.Schema != "s.json" ||
		len(cfg.Targets) != 1 || cfg.Targets[0] != "x.html" {
		t.Errorf("Config() = %+v", cfg)
	}
}
