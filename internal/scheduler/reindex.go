// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/tasks"
)

// ReindexScheduler queues a full search index rebuild on a cron schedule so
// the index tracks catalogue changes without manual intervention.
type ReindexScheduler struct {
	taskClient *tasks.Client
	cfg        config.Scheduler

	cron       *cron.Cron
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewReindexScheduler(taskClient *tasks.Client, cfg config.Scheduler) *ReindexScheduler {
	return &ReindexScheduler{
		taskClient: taskClient,
		cfg:        cfg,
		cron: cron.New(cron.WithParser(
			cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if scheduled reindexing is enabled.
func (s *ReindexScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.cfg.ReindexEnabled {
		log.Printf("Reindex scheduler: disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.ReindexSchedule, s.queueReindex); err != nil {
		return fmt.Errorf("invalid reindex schedule %q: %w", s.cfg.ReindexSchedule, err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true
	log.Printf("Reindex scheduler: started with schedule %q", s.cfg.ReindexSchedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *ReindexScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.cron.Stop()
	s.isRunning = false
	log.Printf("Reindex scheduler: stopped")
}

func (s *ReindexScheduler) queueReindex() {
	if _, err := s.taskClient.Add(tasks.ReindexSearchTask{}).Save(); err != nil {
		log.Printf("Reindex scheduler: failed to queue reindex: %v", err)
		return
	}
	log.Printf("Reindex scheduler: queued search index rebuild")
}
