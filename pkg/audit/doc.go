// Package audit provides audit logging for storage tier transitions.
//
// Tier activations, fallbacks, and shutdowns are security and reliability
// relevant: a silent fall to the in-memory tier means writes stop being
// durable. Every transition is logged in RFC5424 syslog format so
// monitoring can alert on it.
//
// # Event Types
//
//   - Tier activation (which tier now serves sessions)
//   - Fallback (a tier was skipped, with cause)
//   - Degraded operation
//   - Shutdown and reinitialization
package audit
