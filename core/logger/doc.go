// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the read API.
//
// # Context Awareness
//
// Two helpers attach correlation fields:
//   - WithRequestID copies the request id set by Fiber's requestid middleware.
//   - ForRun tags every line of a synchronization run with its domain and a uuid run id,
//     so that the output of overlapping scheduler jobs can be told apart.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	runLog := logger.ForRun(log, "commodities")
//	runLog.Info("Import started")
package logger
