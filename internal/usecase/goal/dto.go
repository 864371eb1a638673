package goal

import (
	"time"

	"hr-agent-service/internal/usecase/access"
)

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Actor       access.Actor
	EmployeeID  int64  `validate:"required,min=1"`
	Title       string `validate:"required,min=3,max=200"`
	Description string `validate:"omitempty,max=2000"`
	DueDate     time.Time
}

// CreateGoalResponse represents the response payload after creating a goal.
type CreateGoalResponse struct {
	ID int64
}

// Goal represents a performance goal DTO for API responses.
type Goal struct {
	ID          int64
	EmployeeID  int64
	Title       string
	Description string
	Status      string
	Progress    int
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetGoalRequest represents the request payload for retrieving a goal.
type GetGoalRequest struct {
	Actor access.Actor
	ID    int64
}

// GetGoalResponse represents the response payload for goal details.
type GetGoalResponse struct {
	Goal
}

// UpdateGoalRequest represents the request payload for updating a goal.
// Zero-valued fields keep the stored value.
type UpdateGoalRequest struct {
	Actor       access.Actor
	ID          int64  `validate:"required,min=1"`
	Title       string `validate:"omitempty,min=3,max=200"`
	Description string `validate:"omitempty,max=2000"`
	Status      string `validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	DueDate     time.Time
}

// UpdateGoalResponse represents the response payload after updating a goal.
type UpdateGoalResponse struct {
	ID int64
}

// UpdateProgressRequest represents a progress change on a goal.
type UpdateProgressRequest struct {
	Actor    access.Actor
	ID       int64 `validate:"required,min=1"`
	Progress int   `validate:"min=0,max=100"`
}

// UpdateProgressResponse reports the resulting progress and status.
type UpdateProgressResponse struct {
	ID       int64
	Progress int
	Status   string
}

// DeleteGoalRequest represents the request payload for deleting a goal.
type DeleteGoalRequest struct {
	Actor access.Actor
	ID    int64
}

// DeleteGoalResponse represents the response payload after deleting a goal.
type DeleteGoalResponse struct {
	ID int64
}

// ListGoalsRequest represents the request payload for listing goals.
type ListGoalsRequest struct {
	Actor access.Actor
	Page  int64
	Limit int64
}

// ListGoalsResponse represents the response payload for goal listing.
type ListGoalsResponse struct {
	Goals      []Goal
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}
