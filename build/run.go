package build

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/ardnew/sitegen/log"
	"github.com/ardnew/sitegen/pkg"
	"github.com/ardnew/sitegen/site"
)

// FileResult describes one target file that contains placeholders.
type FileResult struct {
	Name         string
	Placeholders int
	Replacements int
	Written      bool
}

// ExportResult describes the generated data script.
type ExportResult struct {
	Path    string
	Size    int
	Written bool
}

// Result summarizes a run.
type Result struct {
	Mode   Mode
	Keys   int
	Report site.Report
	Files  []FileResult
	Export ExportResult
	// Replacements is the number of placeholders substituted (or that would
	// be substituted in preview mode) across all files.
	Replacements int
	// Modified is the number of files with at least one replacement.
	Modified int
}

// Run processes the project described by cfg.
//
// The site data is loaded and, if cfg.Schema is set, checked against the
// schema. Every target is then validated. In [ModeWrite] any missing key
// aborts the run before a single file is written. [ModeValidate] stops after
// validation, and [ModePreview] goes through every step without writing.
//
// Target files and the data script are replaced atomically.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	o := makeOptions(opts...)
	cfg = cfg.WithDefaults()
	rep := newReporter(o.out, o.verbose)
	res := Result{Mode: o.mode}

	rep.header(o.mode)

	rep.loading(cfg.Data)

	data, err := site.LoadFile(cfg.Path(cfg.Data))
	if err != nil {
		return res, err
	}

	res.Keys = len(data.Keys())
	rep.loaded(res.Keys)
	log.DebugContext(ctx, "loaded site data",
		slog.String("file", cfg.Data), slog.Int("keys", res.Keys))

	if cfg.Schema != "" {
		schema, err := site.LoadSchema(cfg.Path(cfg.Schema))
		if err != nil {
			return res, err
		}

		if err := schema.Validate(data); err != nil {
			return res, err
		}

		rep.schemaOK(cfg.Schema)
	}

	names, err := expandTargets(os.DirFS(cfg.Root), cfg.Targets)
	if err != nil {
		return res, err
	}

	log.DebugContext(ctx, "expanded targets",
		slog.Any("patterns", cfg.Targets), slog.Int("files", len(names)))

	sources, err := readSources(cfg.Root, names)
	if err != nil {
		return res, err
	}

	rep.validating(len(sources))

	res.Report = site.Validate(sources, data)
	rep.validated(res.Report)

	var missing error
	if !res.Report.OK() {
		missing = ErrMissingKeys.With(
			slog.Int("count", len(res.Report.Missing)),
			slog.Any("keys", res.Report.Missing),
		)

		rep.missing(res.Report.Missing, cfg.Data, func(key string) []string {
			return site.Suggest(key, data, o.suggestions)
		})

		if o.mode == ModeWrite {
			rep.aborted()

			return res, missing
		}
	}

	rep.unused(res.Report.Unused)
	rep.nested(res.Report.Nested)

	if o.mode == ModeValidate {
		rep.validateDone(missing == nil)

		return res, missing
	}

	// The script is prepared before any target is rewritten so that an
	// export failure leaves the project untouched.
	script, err := site.Export(data,
		site.WithGlobal(cfg.Global),
		site.WithTitle(cfg.Title),
		site.WithSource(filepath.ToSlash(cfg.Data)),
		site.WithGenerator(pkg.Name),
	)
	if err != nil {
		return res, err
	}

	write := o.mode == ModeWrite

	rep.processing(o.mode)

	for _, src := range sources {
		if err := context.Cause(ctx); err != nil {
			return res, err
		}

		keys, ok := res.Report.Placeholders[src.Name]
		if !ok {
			continue
		}

		sub := site.Substitute(src.Text, data)
		fr := FileResult{
			Name:         src.Name,
			Placeholders: len(keys),
			Replacements: sub.Count,
		}

		rep.steps(src.Name, sub.Steps)

		if sub.Count > 0 {
			res.Replacements += sub.Count
			res.Modified++

			if write {
				if err := writeFile(cfg.Path(src.Name), []byte(sub.Text)); err != nil {
					return res, err
				}

				fr.Written = true

				log.DebugContext(ctx, "rewrote target",
					slog.String("file", src.Name), slog.Int("replacements", sub.Count))
			}

			rep.file(fr, o.mode)
		}

		res.Files = append(res.Files, fr)
	}

	if err := context.Cause(ctx); err != nil {
		return res, err
	}

	res.Export = ExportResult{Path: cfg.Output, Size: len(script)}

	if write {
		out := cfg.Path(cfg.Output)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return res, ErrWrite.With(slog.String("file", cfg.Output)).Wrap(err)
		}

		if err := writeFile(out, script); err != nil {
			return res, err
		}

		res.Export.Written = true

		log.DebugContext(ctx, "generated data script",
			slog.String("file", cfg.Output), slog.Int("bytes", len(script)))
	}

	rep.exported(res.Export, o.mode)
	rep.summary(res)

	return res, nil
}

// writeFile replaces the content of name with b through a temporary file in
// the same directory. Existing files keep their mode; new files are created
// world-readable.
func writeFile(name string, b []byte) error {
	_, statErr := os.Stat(name)

	if err := atomic.WriteFile(name, bytes.NewReader(b)); err != nil {
		return ErrWrite.With(slog.String("file", name)).Wrap(err)
	}

	if os.IsNotExist(statErr) {
		if err := os.Chmod(name, 0o644); err != nil {
			return ErrWrite.With(slog.String("file", name)).Wrap(err)
		}
	}

	return nil
}
