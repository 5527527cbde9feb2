// Package model defines shared data types used across the collector.
//
// Conventions:
//   - Order records stay in the exact JSON form the upstream returned
//   - Amounts are decimal strings (base units), never floats
//   - Timestamps: time.Time in the collector, unix seconds in upstream payloads
//   - IDs: uuid.UUID for snapshots and cycles, hex strings for order hashes
package model
