package payroll

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	empdomain "hr-agent-service/internal/domain/employee"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// EmployeeLister provides the active employee roster for a run.
type EmployeeLister interface {
	ListAll(ctx context.Context) ([]empdomain.Employee, error)
}

// Salary band bounds in whole currency units per month.
const (
	baseSalary   = 3000.0
	salarySpread = 9000.0
	taxRate      = 0.22
	maxDeduction = 400.0
)

var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Service produces mock payroll figures over the employee roster. Figures
// are deterministic for a given seed and period, so a re-run reproduces
// the same payslips.
type Service struct {
	employees EmployeeLister
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new payroll Service.
func New(employees EmployeeLister, log *zap.Logger) *Service {
	return &Service{
		employees: employees,
		log:       log,
		validate:  validator.New(),
	}
}

// Run fabricates a payslip for every employee in the roster for the given
// period. The router restricts this operation to admins.
func (s *Service) Run(ctx context.Context, in RunRequest) (*RunResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}
	if !periodRe.MatchString(in.Period) {
		return nil, pkgerrors.NewValidationError("period", "period must be formatted as YYYY-MM")
	}

	roster, err := s.employees.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to load employee roster", zap.Error(err))
		return nil, err
	}

	s.log.Info("starting payroll run", zap.String("period", in.Period), zap.Int("employees", len(roster)))

	resp := &RunResponse{
		Period:        in.Period,
		Payslips:      make([]Payslip, 0, len(roster)),
		EmployeeCount: len(roster),
	}

	for _, emp := range roster {
		rng := rand.New(rand.NewPCG(slipSeed(in.Seed, in.Period, emp.ID), uint64(emp.ID)))

		gross := round2(baseSalary + rng.Float64()*salarySpread)
		tax := round2(gross * taxRate)
		deductions := round2(rng.Float64() * maxDeduction)
		net := round2(gross - tax - deductions)

		resp.Payslips = append(resp.Payslips, Payslip{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Department: emp.Department,
			Gross:      gross,
			Tax:        tax,
			Deductions: deductions,
			Net:        net,
		})

		resp.TotalGross = round2(resp.TotalGross + gross)
		resp.TotalTax = round2(resp.TotalTax + tax)
		resp.TotalDeductions = round2(resp.TotalDeductions + deductions)
		resp.TotalNet = round2(resp.TotalNet + net)
	}

	s.log.Info("payroll run finished",
		zap.String("period", in.Period),
		zap.Int("payslips", len(resp.Payslips)),
		zap.Float64("total_net", resp.TotalNet))

	return resp, nil
}

func slipSeed(seed int64, period string, employeeID int64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(period))
	return h.Sum64() ^ uint64(seed) ^ uint64(employeeID)<<17
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
