package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	empdomain "hr-agent-service/internal/domain/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// ==================== MOCKS ====================

type MockEmployeeLister struct {
	mock.Mock
}

func (m *MockEmployeeLister) ListAll(ctx context.Context) ([]empdomain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]empdomain.Employee), args.Error(1)
}

var roster = []empdomain.Employee{
	{ID: 1, Name: "Alex Chen", Department: "Engineering"},
	{ID: 2, Name: "Sam Park", Department: "Sales"},
	{ID: 3, Name: "Kim Lee", Department: "Engineering"},
}

// ==================== RUN TESTS ====================

func TestRun_ProducesPayslipPerEmployee(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return(roster, nil)
	svc := New(lister, zaptest.NewLogger(t))

	resp, err := svc.Run(context.Background(), RunRequest{Period: "2026-08", Seed: 42})

	require.NoError(t, err)
	assert.Equal(t, "2026-08", resp.Period)
	assert.Equal(t, len(roster), resp.EmployeeCount)
	require.Len(t, resp.Payslips, len(roster))

	for i, slip := range resp.Payslips {
		assert.Equal(t, roster[i].ID, slip.EmployeeID)
		assert.Equal(t, roster[i].Name, slip.Name)
		assert.GreaterOrEqual(t, slip.Gross, baseSalary)
		assert.LessOrEqual(t, slip.Gross, baseSalary+salarySpread)
		assert.InDelta(t, slip.Gross*taxRate, slip.Tax, 0.01)
		assert.LessOrEqual(t, slip.Deductions, maxDeduction)
		assert.InDelta(t, slip.Gross-slip.Tax-slip.Deductions, slip.Net, 0.01)
	}
}

func TestRun_TotalsMatchPayslips(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return(roster, nil)
	svc := New(lister, zaptest.NewLogger(t))

	resp, err := svc.Run(context.Background(), RunRequest{Period: "2026-01", Seed: 7})

	require.NoError(t, err)
	var gross, tax, deductions, net float64
	for _, slip := range resp.Payslips {
		gross += slip.Gross
		tax += slip.Tax
		deductions += slip.Deductions
		net += slip.Net
	}
	assert.InDelta(t, gross, resp.TotalGross, 0.05)
	assert.InDelta(t, tax, resp.TotalTax, 0.05)
	assert.InDelta(t, deductions, resp.TotalDeductions, 0.05)
	assert.InDelta(t, net, resp.TotalNet, 0.05)
}

func TestRun_SeededRunsAreReproducible(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return(roster, nil)
	svc := New(lister, zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := svc.Run(ctx, RunRequest{Period: "2026-08", Seed: 99})
	require.NoError(t, err)
	second, err := svc.Run(ctx, RunRequest{Period: "2026-08", Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, first.Payslips, second.Payslips)
	assert.Equal(t, first.TotalNet, second.TotalNet)
}

func TestRun_DifferentPeriodsDiffer(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return(roster, nil)
	svc := New(lister, zaptest.NewLogger(t))
	ctx := context.Background()

	jan, err := svc.Run(ctx, RunRequest{Period: "2026-01", Seed: 99})
	require.NoError(t, err)
	feb, err := svc.Run(ctx, RunRequest{Period: "2026-02", Seed: 99})
	require.NoError(t, err)

	assert.NotEqual(t, jan.Payslips, feb.Payslips)
}

func TestRun_BadPeriodRejected(t *testing.T) {
	svc := New(new(MockEmployeeLister), zaptest.NewLogger(t))

	cases := []struct {
		name   string
		period string
	}{
		{"month out of range", "2026-13"},
		{"not numeric", "2026-ab"},
		{"wrong separator", "2026/08"},
		{"too short", "26-08"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), RunRequest{Period: tc.period})
			assert.Error(t, err)
			assert.IsType(t, &pkgerrors.ValidationError{}, err)
		})
	}
}

func TestRun_RosterLoadFailure(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))
	svc := New(lister, zaptest.NewLogger(t))

	_, err := svc.Run(context.Background(), RunRequest{Period: "2026-08"})

	assert.Error(t, err)
}

func TestRun_EmptyRoster(t *testing.T) {
	lister := new(MockEmployeeLister)
	lister.On("ListAll", mock.Anything).Return([]empdomain.Employee{}, nil)
	svc := New(lister, zaptest.NewLogger(t))

	resp, err := svc.Run(context.Background(), RunRequest{Period: "2026-08"})

	require.NoError(t, err)
	assert.Empty(t, resp.Payslips)
	assert.Zero(t, resp.TotalNet)
}
