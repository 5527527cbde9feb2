// Package source implements one adapter per upstream order book.
//
// An adapter issues a single GET per Fetch and returns the records found in
// the response's array field, byte for byte and in upstream order. Fetch never
// fails: transport errors, non-2xx statuses and malformed payloads are logged
// and reported as an empty result, so the poll loop treats an outage and an
// empty book the same way.
package source
