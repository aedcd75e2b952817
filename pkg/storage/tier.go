package storage

//go:generate go run github.com/dmarkham/enumer -type Tier -trimprefix Tier -transform lower -json -output tier.gen.go

// Tier names one of the ranked storage backends.
type Tier int

const (
	TierNone Tier = iota
	TierPrimary
	TierSecondary
	TierTertiary
)

//go:generate go run github.com/dmarkham/enumer -type Status -trimprefix Status -transform lower -json -output status.gen.go

// Status is the health classification surfaced by the tier manager.
type Status int

const (
	StatusHealthy Status = iota
	StatusDegraded
	StatusUnhealthy
)

// Health is the report returned by the tier manager's health check,
// intended to back an external liveness/readiness probe.
type Health struct {
	Status  Status `json:"status"`
	Tier    Tier   `json:"tier"`
	Message string `json:"message"`
}
