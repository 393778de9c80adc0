package worker

import "time"

// JobTimeout bounds a single job run
const JobTimeout = 30 * time.Second

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobDropped  = "Worker queue full, job dropped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)
