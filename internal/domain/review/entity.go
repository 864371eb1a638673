package review

import "time"

// Status is the lifecycle state of a performance review.
type Status string

const (
	StatusDraft        Status = "DRAFT"
	StatusSubmitted    Status = "SUBMITTED"
	StatusAcknowledged Status = "ACKNOWLEDGED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusAcknowledged:
		return true
	}
	return false
}

// PerformanceReview represents a review of an employee for a period.
type PerformanceReview struct {
	ID           int64
	EmployeeID   int64
	ReviewerID   int64
	Period       string // e.g. "2026-H1"
	Rating       int    // 1..5
	Strengths    string
	Improvements string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
