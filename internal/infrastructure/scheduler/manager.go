// Package scheduler runs background maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

const reconcileTimeout = 30 * time.Minute

// BatchJob processes one batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager evaluates cron expressions in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterReconcileJob recomputes every site's apartment and block counters
// on cronExpr. Runs never overlap; a run still going when the next one is due
// pushes it to the following slot.
func (m *SchedulerManager) RegisterReconcileJob(job BatchJob, cronExpr string) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
			defer cancel()
			m.runReconcile(ctx, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("residence", "reconcile"),
		gocron.WithName("counter-reconcile"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered counter reconcile job", "cron", cronExpr)
	return nil
}

func (m *SchedulerManager) runReconcile(ctx context.Context, job BatchJob) {
	startTime := biztime.NowUTC()

	sites, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("counter reconciliation aborted",
			"error", err,
			"sites", sites,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("counter reconciliation finished",
		"sites", sites,
		"duration", time.Since(startTime),
	)
}

// Start is a no-op when already started.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
