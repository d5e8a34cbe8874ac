package site

import (
	"slices"
)

// Source is a named text body to validate or rewrite.
type Source struct {
	Name string
	Text string
}

// Report is the result of [Validate].
type Report struct {
	// Placeholders maps each source name to its placeholder keys in order of
	// appearance. Sources without placeholders are absent.
	Placeholders map[string][]string
	// Missing holds the distinct keys that do not resolve or resolve to null.
	Missing []string
	// Unused holds the distinct flattened keys no placeholder refers to.
	Unused []string
	// Nested holds the distinct referenced keys whose text contains
	// placeholder syntax, which a single substitution pass leaves in place.
	Nested []string
}

// Total returns the number of placeholders across all sources.
func (r Report) Total() int {
	n := 0
	for _, keys := range r.Placeholders {
		n += len(keys)
	}

	return n
}

// Files returns the number of sources that contain placeholders.
func (r Report) Files() int { return len(r.Placeholders) }

// OK reports whether every placeholder resolves.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Validate scans every source and cross-references its placeholders with d.
// All key lists in the report are sorted.
func Validate(sources []Source, d *Data) Report {
	report := Report{Placeholders: make(map[string][]string)}

	used := make(map[string]struct{})
	missing := make(map[string]struct{})
	nested := make(map[string]struct{})

	for _, src := range sources {
		keys := Scan(src.Text)
		if len(keys) == 0 {
			continue
		}

		report.Placeholders[src.Name] = keys

		for _, key := range keys {
			if _, seen := used[key]; seen {
				continue
			}

			used[key] = struct{}{}

			text, ok := d.Lookup(key)
			switch {
			case !ok:
				missing[key] = struct{}{}
			case HasPlaceholder(text):
				nested[key] = struct{}{}
			}
		}
	}

	for _, key := range d.Keys() {
		if _, ok := used[key]; !ok {
			report.Unused = append(report.Unused, key)
		}
	}

	slices.Sort(report.Unused)
	report.Unused = slices.Compact(report.Unused)
	report.Missing = sortedKeys(missing)
	report.Nested = sortedKeys(nested)

	return report
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
