package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/dashboard"
)

// DashboardHandler handles HTTP requests for the admin dashboard.
type DashboardHandler struct {
	uc  dashboard.Usecase
	log *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(uc dashboard.Usecase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// SummaryResponse represents the aggregated dashboard counters.
type SummaryResponse struct {
	Headcount       int64            `json:"headcount"`
	HeadcountByRole map[string]int64 `json:"headcount_by_role"`
	ReviewsByStatus map[string]int64 `json:"reviews_by_status"`
	OpenGoals       int64            `json:"open_goals"`
	PendingTNA      int64            `json:"pending_tna"`
}

// Summary handles GET /v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		h.log.Error("Dashboard summary failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Headcount:       resp.Headcount,
		HeadcountByRole: resp.HeadcountByRole,
		ReviewsByStatus: resp.ReviewsByStatus,
		OpenGoals:       resp.OpenGoals,
		PendingTNA:      resp.PendingTNA,
	})
}
