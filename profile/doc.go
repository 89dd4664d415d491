// Package profile provides optional runtime profiling for the dynscope
// command.
//
// It wraps [github.com/pkg/profile] behind the "pprof" build tag. Builds
// without the tag compile every operation down to a no-op, so callers can
// configure and start profiling unconditionally.
//
// Use [Modes] to retrieve the list of supported profiling modes, and
// [Config.Start] to begin a profiling session:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "", "", false
//	}
//
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof). Analyze them with
// "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
