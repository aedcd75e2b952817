package audit

import "fmt"

// ShutdownEvent records that the storage layer released its active tier
type ShutdownEvent struct {
	Tier string
}

func (e ShutdownEvent) MessageID() string {
	return "storage-shutdown"
}

func (e ShutdownEvent) Message() string {
	return fmt.Sprintf("storage shut down, released %s tier", e.Tier)
}

func (e ShutdownEvent) Severity() Severity {
	return SeverityNotice
}

func (e ShutdownEvent) Facility() int {
	return FacilityDaemon
}

func (e ShutdownEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDTier: {
			"tier": e.Tier,
		},
	}
}
