package processor

import "time"

const (
	defaultWorkerCount = 8
	defaultBatchSize   uint64 = 100

	idleSleepDuration  = 5 * time.Second
	errorSleepDuration = 5 * time.Second

	drainTimeout = 30 * time.Second
	drainLimit   uint64 = 1000
)

const (
	resultCompleted = "completed"
	resultFailed    = "failed"
	resultSkipped   = "skipped"
	resultExpired   = "expired"
	resultDuplicate = "duplicate"
	resultConflict  = "conflict"
)
