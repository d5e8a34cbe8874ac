package build

import "github.com/ardnew/sitegen/site"

// Predefined errors (sentinel values). Use [errors.Is] to test for them.
var (
	// ErrMissingKeys is returned when placeholders refer to keys absent from
	// the site data. It carries the attributes count and keys.
	ErrMissingKeys = site.NewError("placeholder keys not found in data")
	ErrTargets     = site.NewError("expand target patterns")
	ErrRead        = site.NewError("read target file")
	ErrWrite       = site.NewError("write file")
)
