// Package site implements the data side of sitegen: loading the site data
// document, resolving dot-separated key paths, scanning text for
// {{ key.path }} placeholders, validating placeholders against the data,
// substituting resolved values, and exporting the data as a script.
//
// # Data Document
//
// Site data lives in the YAML front matter of a text document:
//
//	---
//	title: Launch Day
//	team:
//	  lead: Ada
//	---
//	Anything after the closing delimiter is ignored.
//
// [Load] extracts and parses the block, preserving key order. Every
// loading failure is reported as [ErrFormat] wrapping one of
// [ErrOpenDelimiter], [ErrCloseDelimiter], [ErrNotMapping], or [ErrSyntax].
//
// # Placeholders
//
// A placeholder is a key path of ASCII word characters and dots between
// double braces, with optional surrounding whitespace: {{ team.lead }}.
// Anything else between braces is plain text. [Substitute] replaces each
// placeholder whose path resolves to a non-null value and leaves every other
// placeholder exactly as written. Substitution is a single pass: a value
// containing placeholder syntax is inserted verbatim and reported by
// [Validate] in [Report.Nested].
//
// None of the functions in this package write files or decide whether a run
// fails; that is left to the caller.
package site
