package md2post

import "runtime"

// Bounds for the derived worker count.
const (
	MinWorkers = 1
	MaxWorkers = 8

	cpuDivisor = 2
)

// ResolveWorkers returns the number of concurrent file conversions.
// A positive request is used as is; otherwise the count is GOMAXPROCS/2
// clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinWorkers), MaxWorkers)
}
