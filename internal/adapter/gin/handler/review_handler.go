package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/review"
)

// ReviewHandler handles HTTP requests for performance reviews.
type ReviewHandler struct {
	uc  review.Usecase
	log *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(uc review.Usecase, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, log: log}
}

// CreateReviewRequest represents the HTTP request body for authoring a review.
type CreateReviewRequest struct {
	EmployeeID   int64  `json:"employee_id" binding:"required,min=1"`
	Period       string `json:"period" binding:"required,min=4,max=20"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Strengths    string `json:"strengths" binding:"omitempty,max=2000"`
	Improvements string `json:"improvements" binding:"omitempty,max=2000"`
}

// UpdateReviewRequest represents the HTTP request body for updating a review.
type UpdateReviewRequest struct {
	Period       string `json:"period" binding:"omitempty,min=4,max=20"`
	Rating       int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Strengths    string `json:"strengths" binding:"omitempty,max=2000"`
	Improvements string `json:"improvements" binding:"omitempty,max=2000"`
	Status       string `json:"status" binding:"omitempty,oneof=DRAFT SUBMITTED ACKNOWLEDGED"`
}

// ReviewResponse represents the HTTP response for review data.
type ReviewResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	ReviewerID   int64     `json:"reviewer_id"`
	Period       string    `json:"period"`
	Rating       int       `json:"rating"`
	Strengths    string    `json:"strengths,omitempty"`
	Improvements string    `json:"improvements,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListReviewsResponse represents the HTTP response for listing reviews.
type ListReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination *Pagination      `json:"pagination,omitempty"`
}

func reviewToResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		ReviewerID:   r.ReviewerID,
		Period:       r.Period,
		Rating:       r.Rating,
		Strengths:    r.Strengths,
		Improvements: r.Improvements,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// CreateReview handles POST /v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateReview(c.Request.Context(), review.CreateReviewRequest{
		Actor:        actor,
		EmployeeID:   req.EmployeeID,
		Period:       req.Period,
		Rating:       req.Rating,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
	})
	if err != nil {
		h.log.Warn("CreateReview failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// GetReview handles GET /v1/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetReview(c.Request.Context(), review.GetReviewRequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("GetReview failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewToResponse(resp.Review))
}

// UpdateReview handles PUT /v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateReview(c.Request.Context(), review.UpdateReviewRequest{
		Actor:        actor,
		ID:           id,
		Period:       req.Period,
		Rating:       req.Rating,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Status:       req.Status,
	})
	if err != nil {
		h.log.Warn("UpdateReview failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// DeleteReview handles DELETE /v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteReview(c.Request.Context(), review.DeleteReviewRequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("DeleteReview failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// ListReviews handles GET /v1/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.uc.ListReviews(c.Request.Context(), review.ListReviewsRequest{
		Actor: actor,
		Page:  queryInt64(c, "page", 1),
		Limit: queryInt64(c, "limit", 10),
	})
	if err != nil {
		h.log.Error("ListReviews failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := ListReviewsResponse{Reviews: make([]ReviewResponse, 0, len(resp.Reviews))}
	for _, r := range resp.Reviews {
		out.Reviews = append(out.Reviews, reviewToResponse(r))
	}
	if resp.Pagination != nil {
		out.Pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}

	c.JSON(http.StatusOK, out)
}
