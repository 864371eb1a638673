package tna

import "time"

// Priority ranks how urgently a training need should be addressed.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the lifecycle state of a training needs analysis record.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TrainingNeedsAnalysis captures a skill gap identified for an employee.
type TrainingNeedsAnalysis struct {
	ID                  int64
	EmployeeID          int64
	SkillArea           string
	CurrentLevel        int // 1..5
	TargetLevel         int // 1..5
	Priority            Priority
	RecommendedTraining string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
