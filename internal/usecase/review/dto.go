package review

import (
	"time"

	"hr-agent-service/internal/usecase/access"
)

// CreateReviewRequest represents the request payload for authoring a review.
type CreateReviewRequest struct {
	Actor        access.Actor
	EmployeeID   int64  `validate:"required,min=1"`
	Period       string `validate:"required,min=4,max=20"`
	Rating       int    `validate:"required,min=1,max=5"`
	Strengths    string `validate:"omitempty,max=2000"`
	Improvements string `validate:"omitempty,max=2000"`
}

// CreateReviewResponse represents the response payload after creating a review.
type CreateReviewResponse struct {
	ID int64
}

// GetReviewRequest represents the request payload for retrieving a review.
type GetReviewRequest struct {
	Actor access.Actor
	ID    int64
}

// Review represents a performance review DTO for API responses.
type Review struct {
	ID           int64
	EmployeeID   int64
	ReviewerID   int64
	Period       string
	Rating       int
	Strengths    string
	Improvements string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetReviewResponse represents the response payload for review details.
type GetReviewResponse struct {
	Review
}

// UpdateReviewRequest represents the request payload for updating a review.
// Zero-valued fields keep the stored value.
type UpdateReviewRequest struct {
	Actor        access.Actor
	ID           int64  `validate:"required,min=1"`
	Period       string `validate:"omitempty,min=4,max=20"`
	Rating       int    `validate:"omitempty,min=1,max=5"`
	Strengths    string `validate:"omitempty,max=2000"`
	Improvements string `validate:"omitempty,max=2000"`
	Status       string `validate:"omitempty,oneof=DRAFT SUBMITTED ACKNOWLEDGED"`
}

// UpdateReviewResponse represents the response payload after updating a review.
type UpdateReviewResponse struct {
	ID int64
}

// DeleteReviewRequest represents the request payload for deleting a review.
type DeleteReviewRequest struct {
	Actor access.Actor
	ID    int64
}

// DeleteReviewResponse represents the response payload after deleting a review.
type DeleteReviewResponse struct {
	ID int64
}

// ListReviewsRequest represents the request payload for listing reviews.
type ListReviewsRequest struct {
	Actor access.Actor
	Page  int64
	Limit int64
}

// ListReviewsResponse represents the response payload for review listing.
type ListReviewsResponse struct {
	Reviews    []Review
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}
