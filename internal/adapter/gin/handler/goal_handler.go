package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/goal"
)

// GoalHandler handles HTTP requests for performance goals.
type GoalHandler struct {
	uc  goal.Usecase
	log *zap.Logger
}

// NewGoalHandler creates a new GoalHandler instance.
func NewGoalHandler(uc goal.Usecase, log *zap.Logger) *GoalHandler {
	return &GoalHandler{uc: uc, log: log}
}

// CreateGoalRequest represents the HTTP request body for creating a goal.
type CreateGoalRequest struct {
	EmployeeID  int64     `json:"employee_id" binding:"required,min=1"`
	Title       string    `json:"title" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	DueDate     time.Time `json:"due_date"`
}

// UpdateGoalRequest represents the HTTP request body for updating a goal.
type UpdateGoalRequest struct {
	Title       string    `json:"title" binding:"omitempty,min=3,max=200"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Status      string    `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	DueDate     time.Time `json:"due_date"`
}

// UpdateProgressRequest represents the HTTP request body for a progress change.
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,min=0,max=100"`
}

// GoalResponse represents the HTTP response for goal data.
type GoalResponse struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListGoalsResponse represents the HTTP response for listing goals.
type ListGoalsResponse struct {
	Goals      []GoalResponse `json:"goals"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

func goalToResponse(g goal.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		EmployeeID:  g.EmployeeID,
		Title:       g.Title,
		Description: g.Description,
		Status:      g.Status,
		Progress:    g.Progress,
		DueDate:     g.DueDate,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// CreateGoal handles POST /v1/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create goal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateGoal(c.Request.Context(), goal.CreateGoalRequest{
		Actor:       actor,
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.log.Warn("CreateGoal failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// GetGoal handles GET /v1/goals/:id
func (h *GoalHandler) GetGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetGoal(c.Request.Context(), goal.GetGoalRequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("GetGoal failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goalToResponse(resp.Goal))
}

// UpdateGoal handles PUT /v1/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update goal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateGoal(c.Request.Context(), goal.UpdateGoalRequest{
		Actor:       actor,
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.log.Warn("UpdateGoal failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// UpdateProgress handles PATCH /v1/goals/:id/progress
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid progress request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateProgress(c.Request.Context(), goal.UpdateProgressRequest{
		Actor:    actor,
		ID:       id,
		Progress: *req.Progress,
	})
	if err != nil {
		h.log.Warn("UpdateProgress failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       resp.ID,
		"progress": resp.Progress,
		"status":   resp.Status,
	})
}

// DeleteGoal handles DELETE /v1/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteGoal(c.Request.Context(), goal.DeleteGoalRequest{Actor: actor, ID: id})
	if err != nil {
		h.log.Warn("DeleteGoal failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// ListGoals handles GET /v1/goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.uc.ListGoals(c.Request.Context(), goal.ListGoalsRequest{
		Actor: actor,
		Page:  queryInt64(c, "page", 1),
		Limit: queryInt64(c, "limit", 10),
	})
	if err != nil {
		h.log.Error("ListGoals failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := ListGoalsResponse{Goals: make([]GoalResponse, 0, len(resp.Goals))}
	for _, g := range resp.Goals {
		out.Goals = append(out.Goals, goalToResponse(g))
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
