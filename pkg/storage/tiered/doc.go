// Package tiered orchestrates the storage tiers.
//
// The manager walks the tiers in order of preference: the networked
// PostgreSQL store, then the embedded SQLite file, then an in-memory map.
// Every attempt is bounded by a timeout and every transition is audited.
// The in-memory tier cannot fail, so the application always starts with a
// working store even when the infrastructure around it is down.
package tiered
