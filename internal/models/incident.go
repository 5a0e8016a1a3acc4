package models

import "time"

// Severity classifies an incident. Anything unrecognised ranks as low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// IsKnown reports whether s is one of the four severities.
func (s Severity) IsKnown() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Rank orders severities from most (0) to least (3) severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	}
	return 3
}

// Incident status values used by the board. Other values are passed through.
const (
	IncidentOpen     = "open"
	IncidentResolved = "resolved"
)

// Incident is a reported safety event. ReportedBy references Employee.ID.
type Incident struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Status      string    `json:"status"`
	ReportedBy  string    `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncidentDraft is an incident before the backing service assigns ID and CreatedAt.
type IncidentDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Status      string   `json:"status"`
	ReportedBy  string   `json:"reported_by"`
}
