package cron

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/cron/jobs"
)

// All merges the built-in jobs from config with the registered ones.
// Registered jobs win on a name clash.
func All(c *config.Config) map[string]Job {
	out := make(map[string]Job)
	for name, j := range config.CronJobs(c) {
		out[name] = Job{Schedule: j.Schedule, Run: j.Job}
	}
	for name, j := range Jobs() {
		out[name] = j
	}
	return out
}

// RunOnce runs the job called name immediately.
func RunOnce(ctx context.Context, c *config.Config, env jobs.Env, name string, args ...string) error {
	j, ok := All(c)[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	return j.Run(ctx, env, args...)
}

// StartCron schedules every job and starts the scheduler. Callers Stop it.
func StartCron(ctx context.Context, c *config.Config, env jobs.Env) (*cron.Cron, error) {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))
	s := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	for name, j := range All(c) {
		name, run := name, j.Run
		_, err := s.AddFunc(j.Schedule, func() {
			if err := run(ctx, env); err != nil {
				logger.Error("cron job failed", zap.String("job", name), zap.Error(err))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", name, err)
		}
		logger.Info("cron job scheduled", zap.String("job", name), zap.String("schedule", j.Schedule))
	}
	s.Start()
	return s, nil
}
