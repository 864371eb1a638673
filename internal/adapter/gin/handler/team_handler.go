package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/team"
)

// TeamHandler handles HTTP requests for team membership. The router
// restricts all three operations to admins.
type TeamHandler struct {
	uc  team.Usecase
	log *zap.Logger
}

// NewTeamHandler creates a new TeamHandler instance.
func NewTeamHandler(uc team.Usecase, log *zap.Logger) *TeamHandler {
	return &TeamHandler{uc: uc, log: log}
}

// AddMemberRequest represents the HTTP request body for adding a member.
type AddMemberRequest struct {
	ManagerID  int64 `json:"manager_id" binding:"required,min=1"`
	EmployeeID int64 `json:"employee_id" binding:"required,min=1"`
}

// MemberResponse represents the HTTP response for a team member.
type MemberResponse struct {
	ID         int64     `json:"id"`
	ManagerID  int64     `json:"manager_id"`
	EmployeeID int64     `json:"employee_id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Title      string    `json:"title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddMember handles POST /v1/teams/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid add member request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.AddMember(c.Request.Context(), team.AddMemberRequest{
		ManagerID:  req.ManagerID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		h.log.Warn("AddMember failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// RemoveMember handles DELETE /v1/teams/:id/members/:employee_id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	managerID, ok := pathID(c)
	if !ok {
		return
	}
	empID, ok := pathParam(c, "employee_id")
	if !ok {
		return
	}

	resp, err := h.uc.RemoveMember(c.Request.Context(), team.RemoveMemberRequest{
		ManagerID:  managerID,
		EmployeeID: empID,
	})
	if err != nil {
		h.log.Warn("RemoveMember failed", zap.Int64("manager_id", managerID), zap.Int64("employee_id", empID), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": resp.Removed})
}

// ListMembers handles GET /v1/teams/:id/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	managerID, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.ListMembers(c.Request.Context(), team.ListMembersRequest{ManagerID: managerID})
	if err != nil {
		h.log.Error("ListMembers failed", zap.Int64("manager_id", managerID), zap.Error(err))
		handleError(c, err)
		return
	}

	out := make([]MemberResponse, 0, len(resp.Members))
	for _, m := range resp.Members {
		out = append(out, MemberResponse{
			ID:         m.ID,
			ManagerID:  m.ManagerID,
			EmployeeID: m.EmployeeID,
			Name:       m.Name,
			Email:      m.Email,
			Title:      m.Title,
			CreatedAt:  m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"members": out})
}
