// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Orders returned per source in the last cycle
//   - Fetch duration per source
//   - Cycle duration and cycle count
//   - Sources that returned nothing, by source
//
// Metrics implements poller.Reporter, so it is fed once per cycle from the
// same observation the log reporter sees.
package metrics
