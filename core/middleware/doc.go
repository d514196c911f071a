// Package middleware contains HTTP middleware for the Fiber read API.
//
// # Components
//
//   - auth: API key validation protecting every route except the configured skips.
//
// Request ids come from Fiber's own requestid middleware; core/logger.WithRequestID
// copies them into log lines.
package middleware
