package dashboard

import (
	"context"

	"go.uber.org/zap"

	pkgerrors "hr-agent-service/pkg/errors"
)

// Summary aggregates the counters shown on the admin dashboard.
type Summary struct {
	Headcount       int64
	HeadcountByRole map[string]int64
	ReviewsByStatus map[string]int64
	OpenGoals       int64
	PendingTNA      int64
}

// Usecase defines the interface for dashboard aggregation.
type Usecase interface {
	Summary(ctx context.Context) (*Summary, error)
}

// EmployeeCounter reports headcount grouped by role.
type EmployeeCounter interface {
	CountByRole(ctx context.Context) (map[string]int64, error)
}

// ReviewCounter reports review counts grouped by status.
type ReviewCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// GoalCounter reports the number of goals not yet completed.
type GoalCounter interface {
	CountOpen(ctx context.Context) (int64, error)
}

// TNACounter reports the number of pending training analyses.
type TNACounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// Service gathers dashboard counters from the individual stores.
type Service struct {
	employees EmployeeCounter
	reviews   ReviewCounter
	goals     GoalCounter
	tna       TNACounter
	log       *zap.Logger
}

// New creates a new dashboard Service.
func New(employees EmployeeCounter, reviews ReviewCounter, goals GoalCounter, tna TNACounter, log *zap.Logger) *Service {
	return &Service{
		employees: employees,
		reviews:   reviews,
		goals:     goals,
		tna:       tna,
		log:       log,
	}
}

// Summary collects the aggregate counters for the dashboard view.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	byRole, err := s.employees.CountByRole(ctx)
	if err != nil {
		s.log.Error("failed to count employees", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to aggregate headcount", err)
	}

	byStatus, err := s.reviews.CountByStatus(ctx)
	if err != nil {
		s.log.Error("failed to count reviews", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to aggregate reviews", err)
	}

	openGoals, err := s.goals.CountOpen(ctx)
	if err != nil {
		s.log.Error("failed to count open goals", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to aggregate goals", err)
	}

	pendingTNA, err := s.tna.CountPending(ctx)
	if err != nil {
		s.log.Error("failed to count pending tna records", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to aggregate training analyses", err)
	}

	var headcount int64
	for _, n := range byRole {
		headcount += n
	}

	return &Summary{
		Headcount:       headcount,
		HeadcountByRole: byRole,
		ReviewsByStatus: byStatus,
		OpenGoals:       openGoals,
		PendingTNA:      pendingTNA,
	}, nil
}
