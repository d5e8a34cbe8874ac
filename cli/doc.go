// Package cli contains the command line interface for sitegen.
//
// # Usage
//
//	sitegen [build] [--dry-run|-n] [--validate] [--verbose|-v]
//	sitegen keys [--format text|json|yaml]
//	sitegen init [--force]
//
// Build is the default command. Without flags it validates every
// placeholder, rewrites the target files and regenerates the data script;
// missing keys abort the build before any file is written. --dry-run writes
// nothing and reports missing keys without failing. --validate only checks
// placeholders and exits non-zero if any key is missing.
//
// # Project Options
//
//   - --root, -C: Project root directory (default ".")
//   - --data: Site data document (default assets/data/site-data.md)
//   - --output: Generated data script (default scripts/site-data.js)
//   - --global: Window property assigned by the data script (default SITE_DATA)
//   - --title: Site title shown in the data script header
//   - --target: Target file or doublestar pattern, repeatable (default *.html)
//   - --schema: JSON Schema the site data must satisfy
//
// # Configuration Files
//
// Flag defaults are read from, in increasing precedence:
//
//	$XDG_CONFIG_HOME/sitegen/config.yaml
//	.sitegen.yaml
//	sitegen.yaml
//	sitegen.jsonc
//
// The last three are looked up in the working directory. Keys are flag
// names, with hyphens or underscores:
//
//	title: Launch
//	target:
//	  - index.html
//	  - "pages/**/*.html"
//	log_level: debug
//
// Command-line flags override configuration files. "sitegen init" writes
// sitegen.yaml in the project root from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// Logs are written to stderr; reports and listings to stdout.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
// It adds the flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/sitegen/pprof)
package cli
