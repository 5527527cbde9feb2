// Package database provides the connection pool for the optional Postgres
// snapshot store.
//
// The log files stay the system of record; Postgres only adds an indexed
// copy of each snapshot (order_snapshots) for querying by source and time.
package database
