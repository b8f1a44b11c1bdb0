package core

import "time"

// Acquire outcomes reported to LockMetrics
const (
	AcquireOutcomeCreated  = "created"
	AcquireOutcomeReused   = "reused"
	AcquireOutcomeConflict = "conflict"
	AcquireOutcomeInvalid  = "invalid"
	AcquireOutcomeError    = "error"
)

// LockMetrics records coordinator activity
type LockMetrics interface {
	// AcquireCompleted records one acquire call by lock kind and outcome
	AcquireCompleted(kind string, outcome string, elapsed time.Duration)
	// ReleaseCompleted records one release attempt
	ReleaseCompleted(released bool)
	// AdaptersArmed reports the number of transactions currently holding an armed completion adapter
	AdaptersArmed(n int)
}
