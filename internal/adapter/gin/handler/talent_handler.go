package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/talent"
)

// TalentHandler proxies talent-acquisition reads to the upstream backend.
type TalentHandler struct {
	uc  talent.Usecase
	log *zap.Logger
}

// NewTalentHandler creates a new TalentHandler instance.
func NewTalentHandler(uc talent.Usecase, log *zap.Logger) *TalentHandler {
	return &TalentHandler{uc: uc, log: log}
}

// Candidates handles GET /v1/talent/candidates
func (h *TalentHandler) Candidates(c *gin.Context) {
	result, err := h.uc.Candidates(c.Request.Context(), c.Request.URL.RawQuery)
	if err != nil {
		h.log.Warn("Talent candidates proxy failed", zap.Error(err))
		handleError(c, err)
		return
	}
	c.Data(result.StatusCode, result.ContentType, result.Body)
}

// Pipeline handles GET /v1/talent/pipeline
func (h *TalentHandler) Pipeline(c *gin.Context) {
	result, err := h.uc.Pipeline(c.Request.Context(), c.Request.URL.RawQuery)
	if err != nil {
		h.log.Warn("Talent pipeline proxy failed", zap.Error(err))
		handleError(c, err)
		return
	}
	c.Data(result.StatusCode, result.ContentType, result.Body)
}
