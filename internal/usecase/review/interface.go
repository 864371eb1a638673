package review

import "context"

// Usecase defines the interface for performance review operations.
type Usecase interface {
	CreateReview(ctx context.Context, in CreateReviewRequest) (*CreateReviewResponse, error)
	GetReview(ctx context.Context, in GetReviewRequest) (*GetReviewResponse, error)
	UpdateReview(ctx context.Context, in UpdateReviewRequest) (*UpdateReviewResponse, error)
	DeleteReview(ctx context.Context, in DeleteReviewRequest) (*DeleteReviewResponse, error)
	ListReviews(ctx context.Context, in ListReviewsRequest) (*ListReviewsResponse, error)
}
