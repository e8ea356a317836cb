// Package profile provides optional runtime profiling for the tcalc
// command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead and the pprof command-line flags are hidden.
//
// With the tag enabled, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace; use [Modes] to retrieve
// the list programmatically. Profile files are written to the configured
// directory with names matching the mode (cpu.pprof, mem.pprof) and can be
// inspected with go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
