// Package profile provides optional runtime profiling for sitegen.
//
// # Overview
//
// This package integrates [github.com/pkg/profile]. Profiling must be enabled
// at build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every operation is a no-op and [Modes] yields nothing.
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// Profile files are written to Path with names matching the mode (e.g.,
// cpu.pprof, mem.pprof). From the command line:
//
//	sitegen build --pprof-mode cpu --pprof-dir ./profiles
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
