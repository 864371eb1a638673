package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/tna"
)

// TNAHandler handles HTTP requests for training needs analysis records.
type TNAHandler struct {
	uc  tna.Usecase
	log *zap.Logger
}

// NewTNAHandler creates a new TNAHandler instance.
func NewTNAHandler(uc tna.Usecase, log *zap.Logger) *TNAHandler {
	return &TNAHandler{uc: uc, log: log}
}

// CreateTNARequest represents the HTTP request body for creating a record.
type CreateTNARequest struct {
	EmployeeID          int64  `json:"employee_id" binding:"required,min=1"`
	SkillArea           string `json:"skill_area" binding:"required,min=2,max=200"`
	CurrentLevel        int    `json:"current_level" binding:"required,min=1,max=5"`
	TargetLevel         int    `json:"target_level" binding:"required,min=1,max=5"`
	Priority            string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	RecommendedTraining string `json:"recommended_training" binding:"omitempty,max=2000"`
}

// UpdateTNARequest represents the HTTP request body for updating a record.
type UpdateTNARequest struct {
	SkillArea           string `json:"skill_area" binding:"omitempty,min=2,max=200"`
	CurrentLevel        int    `json:"current_level" binding:"omitempty,min=1,max=5"`
	TargetLevel         int    `json:"target_level" binding:"omitempty,min=1,max=5"`
	Priority            string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	RecommendedTraining string `json:"recommended_training" binding:"omitempty,max=2000"`
	Status              string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// TNAResponse represents the HTTP response for record data.
type TNAResponse struct {
	ID                  int64     `json:"id"`
	EmployeeID          int64     `json:"employee_id"`
	SkillArea           string    `json:"skill_area"`
	CurrentLevel        int       `json:"current_level"`
	TargetLevel         int       `json:"target_level"`
	Priority            string    `json:"priority"`
	RecommendedTraining string    `json:"recommended_training,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ListTNAResponse represents the HTTP response for listing records.
type ListTNAResponse struct {
	Records    []TNAResponse `json:"records"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

func tnaToResponse(t tna.TNA) TNAResponse {
	return TNAResponse{
		ID:                  t.ID,
		EmployeeID:          t.EmployeeID,
		SkillArea:           t.SkillArea,
		CurrentLevel:        t.CurrentLevel,
		TargetLevel:         t.TargetLevel,
		Priority:            t.Priority,
		RecommendedTraining: t.RecommendedTraining,
		Status:              t.Status,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// CreateTNA handles POST /v1/tna
func (h *TNAHandler) CreateTNA(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateTNARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create tna request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateTNA(c.Request.Context(), tna.CreateTNARequest{
		Actor:               actor,
		EmployeeID:          req.EmployeeID,
		SkillArea:           req.SkillArea,
		CurrentLevel:        req.CurrentLevel,
		TargetLevel:         req.TargetLevel,
		Priority:            req.Priority,
		RecommendedTraining: req.RecommendedTraining,
	})
	if err != nil {
		h.log.Warn("CreateTNA failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// GetTNA handles GET /v1/tna/:id
func (h *TNAHandler) GetTNA(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetTNA(c.Request.Context(), tna.GetTNARequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("GetTNA failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tnaToResponse(resp.TNA))
}

// UpdateTNA handles PUT /v1/tna/:id
func (h *TNAHandler) UpdateTNA(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateTNARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update tna request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateTNA(c.Request.Context(), tna.UpdateTNARequest{
		Actor:               actor,
		ID:                  id,
		SkillArea:           req.SkillArea,
		CurrentLevel:        req.CurrentLevel,
		TargetLevel:         req.TargetLevel,
		Priority:            req.Priority,
		RecommendedTraining: req.RecommendedTraining,
		Status:              req.Status,
	})
	if err != nil {
		h.log.Warn("UpdateTNA failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// DeleteTNA handles DELETE /v1/tna/:id
func (h *TNAHandler) DeleteTNA(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteTNA(c.Request.Context(), tna.DeleteTNARequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("DeleteTNA failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// ListTNA handles GET /v1/tna
func (h *TNAHandler) ListTNA(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.uc.ListTNA(c.Request.Context(), tna.ListTNARequest{
		Actor: actor,
		Page:  queryInt64(c, "page", 1),
		Limit: queryInt64(c, "limit", 10),
	})
	if err != nil {
		h.log.Error("ListTNA failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := ListTNAResponse{Records: make([]TNAResponse, 0, len(resp.Records))}
	for _, t := range resp.Records {
		out.Records = append(out.Records, tnaToResponse(t))
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
