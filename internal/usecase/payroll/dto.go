package payroll

// RunRequest represents the request payload for a mock payroll run.
type RunRequest struct {
	Period string `validate:"required,len=7"` // YYYY-MM
	Seed   int64  `validate:"omitempty"`
}

// Payslip holds the fabricated figures for one employee.
type Payslip struct {
	EmployeeID int64
	Name       string
	Department string
	Gross      float64
	Tax        float64
	Deductions float64
	Net        float64
}

// RunResponse represents the aggregate outcome of a payroll run.
type RunResponse struct {
	Period          string
	Payslips        []Payslip
	EmployeeCount   int
	TotalGross      float64
	TotalTax        float64
	TotalDeductions float64
	TotalNet        float64
}
