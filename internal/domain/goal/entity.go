package goal

import "time"

// Status is the lifecycle state of a performance goal.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// PerformanceGoal represents a goal assigned to an employee.
type PerformanceGoal struct {
	ID          int64
	EmployeeID  int64
	Title       string
	Description string
	Status      Status
	Progress    int // 0..100
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
