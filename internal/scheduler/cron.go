package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Runner performs one reconciliation pass
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler drives the runner at a fixed interval
type Scheduler struct {
	cron     *cron.Cron
	job      cron.Job
	runner   Runner
	interval time.Duration
	logger   *logrus.Logger

	// first tracks the startup pass, which runs outside of cron
	first sync.WaitGroup
}

// NewScheduler creates a new scheduler
func NewScheduler(runner Runner, interval time.Duration, logger *logrus.Logger) *Scheduler {
	s := &Scheduler{
		cron:     cron.New(),
		runner:   runner,
		interval: interval,
		logger:   logger,
	}

	// A pass still running when the next tick fires swallows that tick
	chain := cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger)))
	s.job = chain.Then(cron.FuncJob(func() {
		s.runPass()
	}))

	return s
}

// Start schedules the reconciliation job and runs the first pass right away
func (s *Scheduler) Start() error {
	if s.interval < time.Second {
		return fmt.Errorf("check interval must be at least 1s, got %s", s.interval)
	}

	s.logger.WithField("interval", s.interval).Info("Starting scheduler")

	s.cron.Schedule(cron.Every(s.interval), s.job)
	s.cron.Start()

	s.first.Add(1)
	go func() {
		defer s.first.Done()
		s.job.Run()
	}()

	s.logger.Info("Scheduler started")
	return nil
}

// Stop stops scheduling new passes. The returned context is done once the
// pass in flight, if any, has finished.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler")
	cronCtx := s.cron.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-cronCtx.Done()
		s.first.Wait()
		cancel()
	}()
	return ctx
}

// RunNow runs a single pass synchronously and returns its error
func (s *Scheduler) RunNow() error {
	return s.runPass()
}

// runPass executes one reconciliation pass
func (s *Scheduler) runPass() error {
	start := time.Now()

	if err := s.runner.Run(context.Background()); err != nil {
		s.logger.WithError(err).WithField("duration", time.Since(start)).Error("Reconciliation pass failed")
		return err
	}

	s.logger.WithField("duration", time.Since(start)).Debug("Reconciliation pass completed")
	return nil
}
