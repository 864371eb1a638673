package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/payroll"
)

// PayrollHandler handles HTTP requests for mock payroll runs. The router
// restricts this endpoint to admins.
type PayrollHandler struct {
	uc  payroll.Usecase
	log *zap.Logger
}

// NewPayrollHandler creates a new PayrollHandler instance.
func NewPayrollHandler(uc payroll.Usecase, log *zap.Logger) *PayrollHandler {
	return &PayrollHandler{uc: uc, log: log}
}

// RunPayrollRequest represents the HTTP request body for a payroll run.
type RunPayrollRequest struct {
	Period string `json:"period" binding:"required,len=7"`
	Seed   int64  `json:"seed"`
}

// PayslipResponse represents one employee's fabricated figures.
type PayslipResponse struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Department string  `json:"department,omitempty"`
	Gross      float64 `json:"gross"`
	Tax        float64 `json:"tax"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// RunPayrollResponse represents the aggregate run outcome.
type RunPayrollResponse struct {
	Period          string            `json:"period"`
	Payslips        []PayslipResponse `json:"payslips"`
	EmployeeCount   int               `json:"employee_count"`
	TotalGross      float64           `json:"total_gross"`
	TotalTax        float64           `json:"total_tax"`
	TotalDeductions float64           `json:"total_deductions"`
	TotalNet        float64           `json:"total_net"`
}

// Run handles POST /v1/payroll/run
func (h *PayrollHandler) Run(c *gin.Context) {
	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid payroll request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Run(c.Request.Context(), payroll.RunRequest{Period: req.Period, Seed: req.Seed})
	if err != nil {
		h.log.Warn("Payroll run failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := RunPayrollResponse{
		Period:          resp.Period,
		Payslips:        make([]PayslipResponse, 0, len(resp.Payslips)),
		EmployeeCount:   resp.EmployeeCount,
		TotalGross:      resp.TotalGross,
		TotalTax:        resp.TotalTax,
		TotalDeductions: resp.TotalDeductions,
		TotalNet:        resp.TotalNet,
	}
	for _, p := range resp.Payslips {
		out.Payslips = append(out.Payslips, PayslipResponse{
			EmployeeID: p.EmployeeID,
			Name:       p.Name,
			Department: p.Department,
			Gross:      p.Gross,
			Tax:        p.Tax,
			Deductions: p.Deductions,
			Net:        p.Net,
		})
	}

	c.JSON(http.StatusOK, out)
}
