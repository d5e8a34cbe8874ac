package build

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ardnew/sitegen/site"
)

// expandTargets returns the regular files of fsys matched by patterns, in
// pattern order and without duplicates. Matches of a single pattern are
// sorted. Patterns matching nothing are skipped.
func expandTargets(fsys fs.FS, patterns []string) ([]string, error) {
	var (
		names []string
		seen  = make(map[string]struct{})
	)

	for _, raw := range patterns {
		pattern, err := cleanPattern(raw)
		if err != nil {
			return nil, ErrTargets.With(slog.String("pattern", raw)).Wrap(err)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, ErrTargets.With(slog.String("pattern", raw)).Wrap(err)
		}

		slices.Sort(matches)

		for _, name := range matches {
			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// cleanPattern converts a target pattern to the slash-separated, unrooted
// form used by [fs.FS].
func cleanPattern(raw string) (string, error) {
	p := filepath.ToSlash(strings.TrimSpace(raw))
	if p == "" {
		return "", fmt.Errorf("empty pattern")
	}

	if path.IsAbs(p) || filepath.IsAbs(raw) {
		return "", fmt.Errorf("pattern must be relative to the project root")
	}

	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("pattern escapes the project root")
	}

	if !doublestar.ValidatePattern(p) {
		return "", doublestar.ErrBadPattern
	}

	return p, nil
}

// readSources reads each named file below root.
func readSources(root string, names []string) ([]site.Source, error) {
	sources := make([]site.Source, 0, len(names))

	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			return nil, ErrRead.With(slog.String("file", name)).Wrap(err)
		}

		sources = append(sources, site.Source{Name: name, Text: string(b)})
	}

	return sources, nil
}
