package scheduler

import (
	"sync"
	"time"

	"github.com/aldenjg/cornharvest/internal/logger"
	"github.com/aldenjg/cornharvest/internal/worker"
)

// Scheduler feeds jobs into a worker pool on fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// pool queue full is skipped.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Debug("Job scheduled", "job", name, "interval", interval)
		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					logger.Warn("Scheduled job skipped", "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
