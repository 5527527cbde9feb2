// Package poller implements the poll cycle that drives every source.
//
// Each cycle:
//   - Runs one fetch task per configured source, all concurrently
//   - Waits for every task to settle, however slow or empty
//   - Hands the cycle observation (counts and timings) to the reporters
//   - Sleeps a fixed interval before the next cycle
//
// Cycles never overlap. A failing source only ever shows up as a zero count.
package poller
