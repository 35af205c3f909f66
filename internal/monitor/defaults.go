package monitor

import "time"

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxBlockRange uint64 = 500

	errorSleepDuration = 5 * time.Second
	idleSleepDuration  = 10 * time.Second

	defaultBackfillChunkSize   uint64 = 1000
	defaultBackfillWorkerCount        = 4

	backfillBatcherCapacity         = 500
	backfillBatcherFlushInterval    = time.Second
	backfillBatcherFlushesPerSecond = 10
)
