package audit

import "fmt"

// TierActivatedEvent records that a storage tier became the active tier
type TierActivatedEvent struct {
	Tier     string
	Fallback bool
}

func (e TierActivatedEvent) MessageID() string {
	return "tier-activated"
}

func (e TierActivatedEvent) Message() string {
	if e.Fallback {
		return fmt.Sprintf("storage fell back to %s tier", e.Tier)
	}
	return fmt.Sprintf("storage activated %s tier", e.Tier)
}

func (e TierActivatedEvent) Severity() Severity {
	if e.Fallback {
		return SeverityWarning
	}
	return SeverityInfo
}

func (e TierActivatedEvent) Facility() int {
	return FacilityDaemon
}

func (e TierActivatedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDTier: {
			"tier":     e.Tier,
			"fallback": fmt.Sprintf("%t", e.Fallback),
		},
	}
}
