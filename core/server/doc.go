// Package server holds the HTTP read API configuration.
//
// The `start` command serves the canonical store read-only: guild rosters,
// commodity price history and recipe lookups, plus Prometheus metrics.
//
// # Configuration
//
// The Config struct defines the HTTP port and the API key checked by
// core/middleware/auth.
package server
