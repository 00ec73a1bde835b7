// Package metrics provides the centralized Prometheus metrics registry
// for the cloud client core. The metrics themselves are defined in the
// packages that emit them (paginator, lro) to maintain modularity and
// avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client core.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Pagination Metrics (pkg/paginator):
//   - cloudapi_pages_fetched_total (Counter): Pages fetched successfully across all paginators
//   - cloudapi_page_fetch_errors_total (Counter): Page fetches that returned an error
//
// Polling Metrics (pkg/lro):
//   - cloudapi_lro_poll_attempts_total (Counter): Poll attempts across all operations
//   - cloudapi_lro_poll_backoff_seconds (Histogram): Backoff duration between poll attempts
//   - cloudapi_lro_polls_stopped_total (Counter): Polling loops stopped by policy before completion
//
// Example Prometheus Queries:
//
//   # Page fetch error rate
//   rate(cloudapi_page_fetch_errors_total[5m]) /
//   (rate(cloudapi_pages_fetched_total[5m]) + rate(cloudapi_page_fetch_errors_total[5m]))
//
//   # P95 poll backoff
//   histogram_quantile(0.95, rate(cloudapi_lro_poll_backoff_seconds_bucket[5m]))
//
//   # Operations giving up
//   rate(cloudapi_lro_polls_stopped_total[5m])
