package build

import "io"

// Mode selects what a run is allowed to change.
type Mode int

const (
	// ModeWrite validates, rewrites targets, and regenerates the data
	// script. Missing keys abort the run before anything is written.
	ModeWrite Mode = iota
	// ModePreview performs the same work as ModeWrite but writes nothing.
	// Missing keys are reported and do not abort the run.
	ModePreview
	// ModeValidate stops after validation. Missing keys fail the run.
	ModeValidate
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModePreview:
		return "preview"
	case ModeValidate:
		return "validate"
	default:
		return "unknown"
	}
}

type options struct {
	out         io.Writer
	mode        Mode
	verbose     bool
	suggestions int
}

// Option configures [Run].
type Option func(options) options

func makeOptions(opts ...Option) options {
	o := options{out: io.Discard, mode: ModeWrite, suggestions: 3}
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// WithMode sets the run mode. The default is [ModeWrite].
func WithMode(mode Mode) Option {
	return func(o options) options {
		o.mode = mode

		return o
	}
}

// WithVerbose enables per-placeholder detail and unused key listings in the
// report.
func WithVerbose(verbose bool) Option {
	return func(o options) options {
		o.verbose = verbose

		return o
	}
}

// WithReport sets the writer receiving the human-readable report.
// A nil writer discards the report.
func WithReport(w io.Writer) Option {
	return func(o options) options {
		if w == nil {
			w = io.Discard
		}

		o.out = w

		return o
	}
}

// WithSuggestions sets how many similar keys are suggested for each missing
// key. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(o options) options {
		o.suggestions = max(n, 0)

		return o
	}
}
