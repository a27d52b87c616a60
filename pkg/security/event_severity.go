package security

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a security event
// This is derived from EventType, NOT user-provided
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// EventSeverityMap defines the hard-coded severity for each event type
var EventSeverityMap = map[EventType]Severity{
	EventLoginSuccess:         SeverityINFO,
	EventUserRegistered:       SeverityINFO,
	EventRegistrationConflict: SeverityMEDIUM,
	EventLoginFailed:          SeverityWARN,
	EventUnauthorizedAccess:   SeverityHIGH,
}

// GetSeverity returns the severity for an event type
// If the event type is not mapped, defaults to MEDIUM
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// IsHighOrAbove returns true if the event is HIGH severity
func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}

// zapLevel maps a severity to the level its entries are written at.
func (s Severity) zapLevel() zapcore.Level {
	if s == SeverityINFO {
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}
