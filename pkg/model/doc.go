// Package model defines the entity records persisted by the gateway's
// configuration store.
//
// Every record embeds Record, which carries the tier-assigned integer
// identifier, and implements Entity. The Kind discriminator is the explicit
// routing tag used by the storage adapters; adapters never infer a record's
// type from its field shape.
//
// Nested structured fields use JSONMap and StringList so they round-trip
// through text columns on the relational tiers.
package model
