package cron

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/cron/jobs"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	ran := false
	Register("testregistryjob", "@every 1h", func(context.Context, jobs.Env, ...string) error {
		ran = true
		return nil
	})
	defer Unregister("testregistryjob")

	all := Jobs()
	j, ok := all["testregistryjob"]
	if !ok {
		t.Fatal("testregistryjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	if err := j.Run(context.Background(), jobs.Env{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	noop := func(context.Context, jobs.Env, ...string) error { return nil }
	Register("dupjob", "@hourly", noop)
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", noop)
}

func TestAll_IncludesBuiltins(t *testing.T) {
	c := &config.Config{CartBackupSchedule: "@every 5m"}
	j, ok := All(c)["cartbackup"]
	if !ok {
		t.Fatal("cartbackup missing from All()")
	}
	if j.Schedule != "@every 5m" {
		t.Errorf("Schedule = %q, want @every 5m", j.Schedule)
	}
}

func TestRunOnce_Unknown(t *testing.T) {
	if err := RunOnce(context.Background(), &config.Config{}, jobs.Env{}, "nope"); err == nil {
		t.Fatal("want error for unknown job")
	}
}

func TestStartCron_BadSchedule(t *testing.T) {
	c := &config.Config{CartBackupSchedule: "not a schedule"}
	if _, err := StartCron(context.Background(), c, jobs.Env{}); err == nil {
		t.Fatal("want error for invalid schedule")
	}
}
