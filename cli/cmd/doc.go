// Package cmd implements the sitegen subcommands.
//
// Commands receive their shared state through [context.Context]: the parsed
// [kong.Context] ([WithContext]), the project configuration ([WithProject])
// and the writer for command output ([WithStdout]).
package cmd

// ConfigIdentifier is the kong variable identifier containing the base name
// of the project configuration file written by [Init].
var ConfigIdentifier = "config"
