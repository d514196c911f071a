package result

import (
	"time"

	"wowsync/core/logger"
	"wowsync/core/metrics"

	"go.uber.org/zap"
)

// Run executes one orchestrator run for domain. fn receives a logger tagged
// with the domain and a fresh run id; its summary is logged and exported
// whether or not it failed.
func Run(l *zap.Logger, domain string, fn func(log *zap.Logger) (Summary, error)) (Summary, error) {
	log := logger.ForRun(l, domain)
	log.Info("Sync started")

	start := time.Now()
	sum, err := fn(log)
	elapsed := time.Since(start)

	metrics.RecordRun(domain, elapsed, err)
	sum.Record(domain)

	fields := append(sum.Fields(), zap.Duration("duration", elapsed))
	if err != nil {
		log.Error("Sync failed", append(fields, zap.Error(err))...)
		return sum, err
	}
	log.Info("Sync completed", fields...)
	return sum, nil
}
