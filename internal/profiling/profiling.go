// Package profiling wraps github.com/pkg/profile with the two profile
// kinds the parser's CPU/allocation hot paths are tuned against.
package profiling

import "github.com/pkg/profile"

// Kind selects which profile.Profile to start.
type Kind uint8

const (
	// CPU starts a CPU profile.
	CPU Kind = iota
	// Memory starts a heap allocation profile.
	Memory
)

// Start begins profiling into dir and returns a func to stop it, mirroring
// profile.Start's own defer-friendly Stop method.
func Start(kind Kind, dir string) func() {
	var opt func(*profile.Profile)

	switch kind {
	case Memory:
		opt = profile.MemProfile
	default:
		opt = profile.CPUProfile
	}

	p := profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook)

	return p.Stop
}
