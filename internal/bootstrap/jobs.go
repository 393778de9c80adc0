package bootstrap

import (
	"log/slog"

	"github.com/aldenjg/cornharvest/internal/config"
	"github.com/aldenjg/cornharvest/internal/eventlog"
	"github.com/aldenjg/cornharvest/internal/scheduler"
	"github.com/aldenjg/cornharvest/internal/worker"
)

// StartBackgroundJobs starts the housekeeping pool and schedules the journal
// cleanup. Both returned values must be stopped on shutdown.
func StartBackgroundJobs(cfg *config.Config, journal eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(BackgroundWorkers, BackgroundQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(JobNameJournalCleanup, cfg.JournalCleanupInterval,
		eventlog.NewCleanupJob(journal, cfg.JournalRetention))

	slog.Info(LogMsgBackgroundJobsStarted,
		"journal_retention", cfg.JournalRetention,
		"cleanup_interval", cfg.JournalCleanupInterval)

	return pool, sched
}
