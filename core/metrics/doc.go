// Package metrics exposes Prometheus collectors for upstream API traffic and
// sync runs. Collectors register with the default registry and are served by
// the HTTP server at /metrics.
package metrics
