package domain

import "time"

// Severity tags a Notification for presentation only.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Known reports whether s is one of the recognised tags.
func (s Severity) Known() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo:
		return true
	}
	return false
}

// Notification is a transient status message (a toast).
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	Duration  time.Duration
}
