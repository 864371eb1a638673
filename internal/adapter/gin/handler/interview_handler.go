package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/interview"
)

// InterviewHandler handles HTTP requests for mock interview simulation.
type InterviewHandler struct {
	uc  interview.Usecase
	log *zap.Logger
}

// NewInterviewHandler creates a new InterviewHandler instance.
func NewInterviewHandler(uc interview.Usecase, log *zap.Logger) *InterviewHandler {
	return &InterviewHandler{uc: uc, log: log}
}

// SimulateInterviewRequest represents the HTTP request body for a simulation.
type SimulateInterviewRequest struct {
	CandidateName string `json:"candidate_name" binding:"required,min=2,max=100"`
	Role          string `json:"role" binding:"required,min=2,max=100"`
	QuestionCount int    `json:"question_count" binding:"omitempty,min=1,max=20"`
	Seed          int64  `json:"seed"`
}

// QuestionResultResponse represents one question outcome in the response.
type QuestionResultResponse struct {
	Number        int     `json:"number"`
	Question      string  `json:"question"`
	Communication int     `json:"communication"`
	Technical     int     `json:"technical"`
	Clarity       int     `json:"clarity"`
	Score         float64 `json:"score"`
}

// SimulateInterviewResponse represents the full simulation outcome.
type SimulateInterviewResponse struct {
	CandidateName string                   `json:"candidate_name"`
	Role          string                   `json:"role"`
	Questions     []QuestionResultResponse `json:"questions"`
	OverallScore  float64                  `json:"overall_score"`
	Verdict       string                   `json:"verdict"`
	Summary       string                   `json:"summary"`
	DurationMs    int64                    `json:"duration_ms"`
}

// Simulate handles POST /v1/interviews/simulate
func (h *InterviewHandler) Simulate(c *gin.Context) {
	var req SimulateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid simulate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Simulate(c.Request.Context(), interview.SimulateRequest{
		CandidateName: req.CandidateName,
		Role:          req.Role,
		QuestionCount: req.QuestionCount,
		Seed:          req.Seed,
	})
	if err != nil {
		h.log.Warn("Simulate failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := SimulateInterviewResponse{
		CandidateName: resp.CandidateName,
		Role:          resp.Role,
		Questions:     make([]QuestionResultResponse, 0, len(resp.Questions)),
		OverallScore:  resp.OverallScore,
		Verdict:       resp.Verdict,
		Summary:       resp.Summary,
		DurationMs:    resp.DurationMs,
	}
	for _, q := range resp.Questions {
		out.Questions = append(out.Questions, QuestionResultResponse{
			Number:        q.Number,
			Question:      q.Question,
			Communication: q.Communication,
			Technical:     q.Technical,
			Clarity:       q.Clarity,
			Score:         q.Score,
		})
	}

	c.JSON(http.StatusOK, out)
}
