package eventlog

import (
	"context"
	"time"

	"github.com/aldenjg/cornharvest/internal/logger"
)

// CleanupJob prunes journal entries past their retention
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a cleanup job for the worker pool
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &CleanupJob{
		service:   service,
		retention: retention,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, LogFieldRetention, j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, duration)
		return err
	}

	if count > 0 {
		log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, duration)
	}
	return nil
}
