package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Func is the body of a scheduled job.
type Func func(ctx context.Context) error

// Scheduler runs sync jobs on cron specs. A job whose previous run is still
// in progress is skipped. Runs of different jobs share the store and are
// serialized: a run waits until no other job is running.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	jobs   map[string]cron.EntryID
	order  []string
	ctx    context.Context

	// running is held for the duration of every run
	running sync.Mutex
	// startup tracks the run-on-start pass, which cron does not know about
	startup sync.WaitGroup
}

// New creates a Scheduler evaluating specs in cfg.Timezone.
func New(cfg Config, logger *zap.Logger) (*Scheduler, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	cl := cronLogger{logger.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
		jobs:   map[string]cron.EntryID{},
		ctx:    context.Background(),
	}, nil
}

// Add registers a job. An empty spec leaves the job disabled.
func (s *Scheduler) Add(name, spec string, fn Func) error {
	if spec == "" {
		s.logger.Info("Job disabled", zap.String("job", name))
		return nil
	}
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	id, err := s.cron.AddFunc(spec, func() { s.run(name, fn) })
	if err != nil {
		return fmt.Errorf("invalid spec %q for job %s: %w", spec, name, err)
	}
	s.jobs[name] = id
	s.order = append(s.order, name)
	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("spec", spec))
	return nil
}

// Jobs returns the names of the enabled jobs in registration order.
func (s *Scheduler) Jobs() []string {
	return append([]string(nil), s.order...)
}

// Trigger runs a registered job now through the same wrappers as a scheduled
// run, so it is skipped when the job is already running.
func (s *Scheduler) Trigger(name string) error {
	id, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("job %s not registered", name)
	}
	s.cron.Entry(id).WrappedJob.Run()
	return nil
}

// Start runs the scheduler until ctx is done, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context, runOnStart bool) {
	s.ctx = ctx
	s.cron.Start()

	if runOnStart {
		// One pass in registration order, so the catalog is in place before
		// jobs that depend on it
		s.startup.Add(1)
		go func() {
			defer s.startup.Done()
			for _, name := range s.order {
				if ctx.Err() != nil {
					return
				}
				if err := s.Trigger(name); err != nil {
					s.logger.Warn("Startup run failed", zap.String("job", name), zap.Error(err))
				}
			}
		}()
	}

	<-ctx.Done()
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	s.startup.Wait()
}

func (s *Scheduler) run(name string, fn Func) {
	s.running.Lock()
	defer s.running.Unlock()
	if s.ctx.Err() != nil {
		s.logger.Info("Job skipped, scheduler stopping", zap.String("job", name))
		return
	}

	start := time.Now()
	s.logger.Info("Job started", zap.String("job", name))

	if err := fn(s.ctx); err != nil {
		s.logger.Error("Job failed", zap.String("job", name), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return
	}
	s.logger.Info("Job finished", zap.String("job", name), zap.Duration("duration", time.Since(start)))
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
