// Package log provides a simplified logging interface based on [log/slog].
//
// Loggers are immutable values created with [Make] and configured with
// functional options. Deriving a logger with [Logger.Wrap] or [Logger.With]
// never changes the receiver, so a [Logger] is safe to share between
// goroutines.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("build started", slog.String("root", "."))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Package Logger
//
// The package-level functions ([Info], [Warn], ...) write through a default
// logger that is reconfigured in place with [Config]. The command line
// interface calls [Config] while parsing flags so that even parse errors are
// reported with the requested format.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. With [WithPretty], text output is
// colorized using lipgloss styles matched to the color profile of the output
// writer; JSON output is never colorized.
package log
