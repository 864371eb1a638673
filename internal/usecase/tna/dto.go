package tna

import (
	"time"

	"hr-agent-service/internal/usecase/access"
)

// CreateTNARequest represents the request payload for creating a training
// needs analysis record.
type CreateTNARequest struct {
	Actor               access.Actor
	EmployeeID          int64  `validate:"required,min=1"`
	SkillArea           string `validate:"required,min=2,max=200"`
	CurrentLevel        int    `validate:"required,min=1,max=5"`
	TargetLevel         int    `validate:"required,min=1,max=5"`
	Priority            string `validate:"required,oneof=LOW MEDIUM HIGH"`
	RecommendedTraining string `validate:"omitempty,max=2000"`
}

// CreateTNAResponse represents the response payload after creating a record.
type CreateTNAResponse struct {
	ID int64
}

// TNA represents a training needs analysis DTO for API responses.
type TNA struct {
	ID                  int64
	EmployeeID          int64
	SkillArea           string
	CurrentLevel        int
	TargetLevel         int
	Priority            string
	RecommendedTraining string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// GetTNARequest represents the request payload for retrieving a record.
type GetTNARequest struct {
	Actor access.Actor
	ID    int64
}

// GetTNAResponse represents the response payload for record details.
type GetTNAResponse struct {
	TNA
}

// UpdateTNARequest represents the request payload for updating a record.
// Zero-valued fields keep the stored value.
type UpdateTNARequest struct {
	Actor               access.Actor
	ID                  int64  `validate:"required,min=1"`
	SkillArea           string `validate:"omitempty,min=2,max=200"`
	CurrentLevel        int    `validate:"omitempty,min=1,max=5"`
	TargetLevel         int    `validate:"omitempty,min=1,max=5"`
	Priority            string `validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	RecommendedTraining string `validate:"omitempty,max=2000"`
	Status              string `validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// UpdateTNAResponse represents the response payload after updating a record.
type UpdateTNAResponse struct {
	ID int64
}

// DeleteTNARequest represents the request payload for deleting a record.
type DeleteTNARequest struct {
	Actor access.Actor
	ID    int64
}

// DeleteTNAResponse represents the response payload after deleting a record.
type DeleteTNAResponse struct {
	ID int64
}

// ListTNARequest represents the request payload for listing records.
type ListTNARequest struct {
	Actor access.Actor
	Page  int64
	Limit int64
}

// ListTNAResponse represents the response payload for record listing.
type ListTNAResponse struct {
	Records    []TNA
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}
