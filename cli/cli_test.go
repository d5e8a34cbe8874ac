package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/sitegen/build"
	"github.com/ardnew/sitegen/cli/cmd"
	"github.com/ardnew/sitegen/log"
)

const testData = `---
title: Launch Day
team:
  lead: Ada
---
`

// setup isolates the test from user and working directory configuration
// and creates a project with the given target page.
func setup(t *testing.T, page string) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	root := t.TempDir()

	for name, content := range map[string]string{
		build.DefaultData: testData,
		"index.html":      page,
	} {
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

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := cmd.WithStdout(context.Background(), &out)
	err := Run(ctx, func(int) {}, args...)

	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(b)
}

func TestRunDefaultCommand(t *testing.T) {
	root := setup(t, "<h1>{{ title }}</h1>")

	out, err := run(t, "--root", root, "--log-level", "error")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := readFile(t, filepath.Join(root, "index.html")); got != "<h1>Launch Day</h1>" {
		t.Errorf("index.html = %q", got)
	}

	if !strings.Contains(out, "Made 1 replacement(s) in 1 file(s)") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestRunBuildFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		page    string
		wantErr error
		want    string
	}{
		{
			name: "dry run short flag",
			args: []string{"build", "-n"},
			page: "<h1>{{ title }}</h1>{{ nope }}",
			want: "Would make 1 replacement(s) in 1 file(s)",
		},
		{
			name:    "validate missing key",
			args:    []string{"--validate"},
			page:    "{{ nope }}",
			wantErr: build.ErrMissingKeys,
			want:    "nope",
		},
		{
			name:    "missing key aborts",
			args:    []string{"build"},
			page:    "{{ team.led }}",
			wantErr: build.ErrMissingKeys,
			want:    "did you mean: team.lead?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := setup(t, tt.page)

			out, err := run(t, append([]string{"--root", root}, tt.args...)...)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if got := readFile(t, filepath.Join(root, "index.html")); got != tt.page {
				t.Errorf("index.html modified: %q", got)
			}

			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestRunKeys(t *testing.T) {
	root := setup(t, "")

	out, err := run(t, "--root", root, "keys", "--format", "json")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "{\n  \"title\": \"Launch Day\",\n  \"team.lead\": \"Ada\"\n}\n"
	if out != want {
		t.Errorf("keys output = %q, want %q", out, want)
	}
}

func TestRunProjectConfig(t *testing.T) {
	root := setup(t, "<h1>{{ title }}</h1>")

	if _, err := run(t, "--root", root, "--title", "Launch", "--global", "DATA", "init"); err != nil {
		t.Fatalf("init: Run() error = %v", err)
	}

	conf := readFile(t, filepath.Join(root, "sitegen.yaml"))
	if !strings.Contains(conf, "title: Launch") || strings.Contains(conf, "root:") {
		t.Errorf("unexpected configuration:\n%s", conf)
	}

	if _, err := run(t, "--root", root, "init"); err == nil {
		t.Error("second init succeeded without --force")
	}

	// Configuration files are read from the working directory.
	t.Chdir(root)

	if _, err := run(t, "--log-level", "error"); err != nil {
		t.Fatalf("build: Run() error = %v", err)
	}

	script := readFile(t, filepath.Join(root, filepath.FromSlash(build.DefaultOutput)))
	for _, want := range []string{" * Launch Site Data\n", "window.DATA = {"} {
		if !strings.Contains(script, want) {
			t.Errorf("data script missing %q:\n%s", want, script)
		}
	}
}

func TestRunJSONCConfigOverriddenByFlags(t *testing.T) {
	root := setup(t, "<h1>{{ title }}</h1>")

	t.Chdir(root)

	jsonc := `{
  // Local overrides
  "global": "FROM_FILE",
  "title": "File"
}`
	if err := os.WriteFile(filepath.Join(root, "sitegen.jsonc"), []byte(jsonc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "--title", "Flag"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	script := readFile(t, filepath.Join(root, filepath.FromSlash(build.DefaultOutput)))
	for _, want := range []string{" * Flag Site Data\n", "window.FROM_FILE = {"} {
		if !strings.Contains(script, want) {
			t.Errorf("data script missing %q:\n%s", want, script)
		}
	}
}

func TestRunInvalidFlag(t *testing.T) {
	setup(t, "")

	if _, err := run(t, "--no-such-flag"); err == nil {
		t.Error("Run() succeeded with an unknown flag")
	}
}
