package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"climate-registry/internal/pkg/config"
	"climate-registry/internal/repository"
)

// Scheduler runs registry housekeeping jobs
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	pendingRepo   repository.PendingProjectRepository
	retentionDays int
	cronSchedules map[string]cron.EntryID
}

// NewScheduler creates the scheduler with second-level cron support
func NewScheduler(db *gorm.DB, logger *zap.Logger, cfg *config.Config) *Scheduler {
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		pendingRepo:   repository.NewPendingProjectRepository(db),
		retentionDays: cfg.Registry.PendingRetentionDays,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start registers the pending-submission purge job and starts cron
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	log.Info("starting scheduler...")

	// cron expression format: second minute hour day month weekday
	cronExpr := cfg.Registry.PurgeCron
	if cronExpr == "" {
		cronExpr = "0 0 3 * * *" // daily at 03:00
		log.Warnw("registry.purge_cron not configured, using default", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("running scheduled job: pending submission purge")
		if err := s.PurgeStalePending(); err != nil {
			log.Errorf("pending submission purge failed: %v", err)
		}
	})

	if err != nil {
		log.Errorf("registering purge job %v failed: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["pending_purge"] = entryID
	log.Infof("pending submission purge registered: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("scheduler started")

	return nil
}

// Stop stops cron and waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler...")

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("scheduler stopped")
}

// PurgeStalePending deletes pending submissions older than the retention window.
// A retention of zero or less disables purging.
func (s *Scheduler) PurgeStalePending() error {
	if s.retentionDays <= 0 {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	stale, err := s.pendingRepo.CountOlderThan(cutoff)
	if err != nil {
		return err
	}
	if stale == 0 {
		return nil
	}

	deleted, err := s.pendingRepo.DeleteOlderThan(cutoff)
	if err != nil {
		return err
	}

	s.logger.Info("purged stale pending submissions",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)
	return nil
}
