// Package sqlite stores funnel snapshots in a SQLite database, one row per
// key. It uses the pure-Go modernc.org/sqlite driver.
package sqlite
