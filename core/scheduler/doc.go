// Package scheduler runs the periodic sync jobs with robfig/cron.
//
// Jobs are wrapped with SkipIfStillRunning: when a run overlaps the previous
// one of the same job it is dropped. This keeps at most one run per domain
// against the store at any time.
package scheduler
