package util

import "runtime"

// GetOptimalPoolSize returns the worker count for CPU-bound parallel work:
// min(max(NumCPU*2, 4), 32). The 2x factor keeps cores busy while workers
// block in CGO or file reads; the cap bounds per-worker memory.
func GetOptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// GetOptimalPoolSizeWithOverride uses override when positive, otherwise
// falls back to GetOptimalPoolSize. Intended for tests and tuning.
func GetOptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return GetOptimalPoolSize()
}
