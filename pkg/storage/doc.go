// Package storage defines the contract shared by every storage tier: the
// Session operation set, the declarative Query with its Result accessors,
// the error taxonomy, and the tier/health types.
//
// Adapters live in the subpackages postgres, sqlite and memory; the tiered
// subpackage holds the manager that picks between them. Application code
// acquires a Session from the manager and uses only this package's
// operations, so it never branches on which tier is active.
package storage
