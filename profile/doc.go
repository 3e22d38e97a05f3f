// Package profile provides optional runtime profiling for jsonify.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// pprof build tag:
//
//	go build -tags pprof .
//	./jsonify -p inventory.txt --pprof-mode=cpu --pprof-dir=./profiles
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a no-op
// profiler, so callers never need their own build constraints.
//
// Profiles are written to the configured directory with names matching the
// mode (cpu.pprof, mem.pprof, trace.out) and are read with
//
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
