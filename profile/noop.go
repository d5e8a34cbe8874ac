//go:build !pprof

package profile

import "iter"

// Modes yields nothing when built without the pprof tag.
func Modes() iter.Seq[string] {
	return func(func(string) bool) {}
}

func start(Profiler) interface{ Stop() } { return ignore{} }
