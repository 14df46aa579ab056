package core

import "time"

// TimeProvider abstracts the clock so record timestamps and benchmark
// timings can be pinned in tests
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
