package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/onboarding"
)

// OnboardingHandler handles HTTP requests for onboarding runs.
type OnboardingHandler struct {
	uc  onboarding.Usecase
	log *zap.Logger
}

// NewOnboardingHandler creates a new OnboardingHandler instance.
func NewOnboardingHandler(uc onboarding.Usecase, log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{uc: uc, log: log}
}

// OnboardingHireRequest identifies one new hire in the request body.
type OnboardingHireRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Title string `json:"title" binding:"omitempty,max=100"`
}

// RunOnboardingRequest represents the HTTP request body for a run.
type RunOnboardingRequest struct {
	Hires []OnboardingHireRequest `json:"hires" binding:"required,min=1,max=50,dive"`
	Seed  int64                   `json:"seed"`
}

// StepResultResponse represents one step outcome in the response.
type StepResultResponse struct {
	Step   string `json:"step"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// HireResultResponse represents one hire's accumulated step results.
type HireResultResponse struct {
	Name   string               `json:"name"`
	Email  string               `json:"email"`
	Steps  []StepResultResponse `json:"steps"`
	Status string               `json:"status"`
}

// RunOnboardingResponse represents the aggregate run outcome.
type RunOnboardingResponse struct {
	Results    []HireResultResponse `json:"results"`
	Completed  int                  `json:"completed"`
	Partial    int                  `json:"partial"`
	Status     string               `json:"status"`
	DurationMs int64                `json:"duration_ms"`
}

// Run handles POST /v1/onboarding/run
func (h *OnboardingHandler) Run(c *gin.Context) {
	var req RunOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid onboarding request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	hires := make([]onboarding.Hire, 0, len(req.Hires))
	for _, hire := range req.Hires {
		hires = append(hires, onboarding.Hire{
			Name:  hire.Name,
			Email: hire.Email,
			Title: hire.Title,
		})
	}

	resp, err := h.uc.Run(c.Request.Context(), onboarding.RunRequest{Hires: hires, Seed: req.Seed})
	if err != nil {
		h.log.Warn("Onboarding run failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := RunOnboardingResponse{
		Results:    make([]HireResultResponse, 0, len(resp.Results)),
		Completed:  resp.Completed,
		Partial:    resp.Partial,
		Status:     resp.Status,
		DurationMs: resp.DurationMs,
	}
	for _, r := range resp.Results {
		hr := HireResultResponse{
			Name:   r.Name,
			Email:  r.Email,
			Steps:  make([]StepResultResponse, 0, len(r.Steps)),
			Status: r.Status,
		}
		for _, s := range r.Steps {
			hr.Steps = append(hr.Steps, StepResultResponse{
				Step:   s.Step,
				Passed: s.Passed,
				Detail: s.Detail,
			})
		}
		out.Results = append(out.Results, hr)
	}

	c.JSON(http.StatusOK, out)
}
