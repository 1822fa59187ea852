package domain

import "time"

type DisasterType string

const (
	DisasterTypeFlood      DisasterType = "FLOOD"
	DisasterTypeEarthquake DisasterType = "EARTHQUAKE"
	DisasterTypeFire       DisasterType = "FIRE"
	DisasterTypeCyclone    DisasterType = "CYCLONE"
	DisasterTypeOther      DisasterType = "OTHER"
)

type DisasterSeverity string

const (
	DisasterSeverityLow    DisasterSeverity = "LOW"
	DisasterSeverityMedium DisasterSeverity = "MEDIUM"
	DisasterSeverityHigh   DisasterSeverity = "HIGH"
)

type DisasterStatus string

const (
	DisasterStatusActive   DisasterStatus = "ACTIVE"
	DisasterStatusInactive DisasterStatus = "INACTIVE"
	DisasterStatusResolved DisasterStatus = "RESOLVED"
)

type Disaster struct {
	ID          int32            `json:"disasterId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Type        DisasterType     `json:"disasterType"`
	Severity    DisasterSeverity `json:"severity"`
	Status      DisasterStatus   `json:"status"`
	ReportedAt  time.Time        `json:"reportedAt"` // set at creation, never updated
}

func ParseDisasterType(s string) (DisasterType, bool) {
	switch DisasterType(s) {
	case DisasterTypeFlood, DisasterTypeEarthquake, DisasterTypeFire, DisasterTypeCyclone, DisasterTypeOther:
		return DisasterType(s), true
	}
	return "", false
}

func ParseDisasterSeverity(s string) (DisasterSeverity, bool) {
	switch DisasterSeverity(s) {
	case DisasterSeverityLow, DisasterSeverityMedium, DisasterSeverityHigh:
		return DisasterSeverity(s), true
	}
	return "", false
}

func ParseDisasterStatus(s string) (DisasterStatus, bool) {
	switch DisasterStatus(s) {
	case DisasterStatusActive, DisasterStatusInactive, DisasterStatusResolved:
		return DisasterStatus(s), true
	}
	return "", false
}
