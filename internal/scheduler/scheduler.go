package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec runs the snapshot job daily at 03:00.
const DefaultSpec = "0 3 * * *"

// runTimeout bounds a single scheduled run.
const runTimeout = 10 * time.Minute

// Scheduler triggers a SnapshotJob on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	job    *SnapshotJob
	logger *zap.Logger
}

// New registers job under spec (standard five-field cron syntax) in loc.
func New(job *SnapshotJob, spec string, loc *time.Location, logger *zap.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger.Named("cron").Sugar()}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		job:    job,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if _, err := s.job.Run(ctx); err != nil {
		s.logger.Error("scheduled snapshot run failed", zap.Error(err))
	}
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.logger.Info("forecast snapshots scheduled", zap.Time("next", e.Next))
	}
}

// Stop halts scheduling and waits for a running job up to ctx's deadline.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("snapshot job still running at shutdown")
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
