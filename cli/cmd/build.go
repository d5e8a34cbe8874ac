package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/sitegen/build"
	"github.com/ardnew/sitegen/log"
)

// Build validates placeholders, rewrites the target files and regenerates
// the data script.
type Build struct {
	DryRun   bool `help:"Show what would change without writing any file."  short:"n" xor:"mode"`
	Validate bool `help:"Only validate placeholders; exit 1 if any key is missing." xor:"mode"`
	Verbose  bool `help:"Show every placeholder resolution and unused keys." short:"v"`
}

// Mode returns the build mode selected by the flags.
func (b *Build) Mode() build.Mode {
	switch {
	case b.Validate:
		return build.ModeValidate
	case b.DryRun:
		return build.ModePreview
	default:
		return build.ModeWrite
	}
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg := projectFrom(ctx).Config()
	mode := b.Mode()

	log.DebugContext(ctx, "build start",
		slog.String("mode", mode.String()),
		slog.String("root", cfg.Root),
		slog.String("data", cfg.Data),
		slog.Any("targets", cfg.Targets),
	)

	res, err := build.Run(ctx, cfg,
		build.WithMode(mode),
		build.WithVerbose(b.Verbose),
		build.WithReport(stdoutFrom(ctx)),
	)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "build complete",
		slog.String("mode", mode.String()),
		slog.Int("files", res.Modified),
		slog.Int("replacements", res.Replacements),
		slog.Int("unused", len(res.Report.Unused)),
	)

	return nil
}
