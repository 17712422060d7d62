package config

import (
	"context"

	"storefront/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(ctx context.Context, env jobs.Env, args ...string) error
}

// CronJobs returns the built-in jobs with schedules taken from c.
func CronJobs(c *Config) map[string]CronJob {
	return map[string]CronJob{
		"cartbackup": {Schedule: c.CartBackupSchedule, Job: jobs.CartBackupJob},
	}
}
