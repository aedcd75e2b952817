package audit

import "fmt"

// ReinitializeEvent records a requested re-run of tier selection
type ReinitializeEvent struct {
	FromTier  string
	ForceTier string
}

func (e ReinitializeEvent) MessageID() string {
	return "storage-reinitialize"
}

func (e ReinitializeEvent) Message() string {
	if e.ForceTier != "" {
		return fmt.Sprintf("storage reinitializing from %s tier, forced to %s", e.FromTier, e.ForceTier)
	}
	return fmt.Sprintf("storage reinitializing from %s tier", e.FromTier)
}

func (e ReinitializeEvent) Severity() Severity {
	return SeverityNotice
}

func (e ReinitializeEvent) Facility() int {
	return FacilityDaemon
}

func (e ReinitializeEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDTier: {
			"from": e.FromTier,
		},
	}
	if e.ForceTier != "" {
		sd[SDIDTier]["force"] = e.ForceTier
	}
	return sd
}
