package audit

import "fmt"

// TierSkippedEvent records that a tier could not be initialized and the
// next tier will be attempted
type TierSkippedEvent struct {
	Tier         string
	ErrorMessage string
}

func (e TierSkippedEvent) MessageID() string {
	return "tier-skipped"
}

func (e TierSkippedEvent) Message() string {
	msg := fmt.Sprintf("%s tier unavailable", e.Tier)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e TierSkippedEvent) Severity() Severity {
	return SeverityWarning
}

func (e TierSkippedEvent) Facility() int {
	return FacilityDaemon
}

func (e TierSkippedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDTier: {
			"tier":  e.Tier,
			"error": e.ErrorMessage,
		},
	}
}
