package goal

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/goal"
	"hr-agent-service/internal/usecase/access"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Repository defines the interface for goal data access operations.
type Repository interface {
	Create(ctx context.Context, g *domain.PerformanceGoal) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PerformanceGoal, error)
	Update(ctx context.Context, g *domain.PerformanceGoal) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.PerformanceGoal, int64, error)
	CountOpen(ctx context.Context) (int64, error)
}

// EmployeeGetter resolves employee references for existence checks.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id int64) (*empdomain.Employee, error)
}

// Service implements the business logic for performance goals.
// The same self/team/all visibility matrix as reviews applies, but goal
// ownership is looser: an employee manages their own goals.
type Service struct {
	repo      Repository
	employees EmployeeGetter
	scopes    *access.Resolver
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new goal Service.
func New(r Repository, employees EmployeeGetter, scopes *access.Resolver, log *zap.Logger) *Service {
	return &Service{
		repo:      r,
		employees: employees,
		scopes:    scopes,
		log:       log,
		validate:  validator.New(),
	}
}

func (s *Service) requireScope(ctx context.Context, actor access.Actor, employeeID int64) error {
	allowed, err := s.scopes.CanAccess(ctx, actor, employeeID)
	if err != nil {
		return pkgerrors.NewInternalError("failed to resolve access scope", err)
	}
	if !allowed {
		s.log.Warn("goal access outside scope", zap.Int64("actor_id", actor.ID), zap.Int64("employee_id", employeeID))
		return pkgerrors.NewForbiddenError("employee is outside your scope")
	}
	return nil
}

// CreateGoal creates a goal for an employee within the actor's scope.
func (s *Service) CreateGoal(ctx context.Context, in CreateGoalRequest) (*CreateGoalResponse, error) {
	s.log.Info("creating goal", zap.Int64("actor_id", in.Actor.ID), zap.Int64("employee_id", in.EmployeeID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	if err := s.requireScope(ctx, in.Actor, in.EmployeeID); err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &domain.PerformanceGoal{
		EmployeeID:  in.EmployeeID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.StatusNotStarted,
		Progress:    0,
		DueDate:     in.DueDate,
	})
	if err != nil {
		s.log.Error("failed to create goal", zap.Error(err))
		return nil, err
	}
	return &CreateGoalResponse{ID: id}, nil
}

// GetGoal retrieves a goal the actor is allowed to see.
func (s *Service) GetGoal(ctx context.Context, in GetGoalRequest) (*GetGoalResponse, error) {
	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid goal id")
	}

	g, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, g.EmployeeID); err != nil {
		return nil, err
	}

	return &GetGoalResponse{Goal: toDTO(g)}, nil
}

// UpdateGoal applies field changes to a goal within the actor's scope.
func (s *Service) UpdateGoal(ctx context.Context, in UpdateGoalRequest) (*UpdateGoalResponse, error) {
	s.log.Info("updating goal", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	g, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, g.EmployeeID); err != nil {
		return nil, err
	}

	if in.Title != "" {
		g.Title = in.Title
	}
	if in.Description != "" {
		g.Description = in.Description
	}
	if in.Status != "" {
		g.Status = domain.Status(in.Status)
		if g.Status == domain.StatusCompleted {
			g.Progress = 100
		}
	}
	if !in.DueDate.IsZero() {
		g.DueDate = in.DueDate
	}

	id, err := s.repo.Update(ctx, g)
	if err != nil {
		s.log.Error("failed to update goal", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateGoalResponse{ID: id}, nil
}

// UpdateProgress sets the progress percentage; reaching 100 completes the
// goal and any lower value on a fresh goal moves it to IN_PROGRESS.
func (s *Service) UpdateProgress(ctx context.Context, in UpdateProgressRequest) (*UpdateProgressResponse, error) {
	s.log.Info("updating goal progress", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID), zap.Int("progress", in.Progress))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	g, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, g.EmployeeID); err != nil {
		return nil, err
	}

	g.Progress = in.Progress
	switch {
	case in.Progress >= 100:
		g.Status = domain.StatusCompleted
	case in.Progress > 0:
		g.Status = domain.StatusInProgress
	default:
		g.Status = domain.StatusNotStarted
	}

	if _, err := s.repo.Update(ctx, g); err != nil {
		s.log.Error("failed to update goal progress", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateProgressResponse{
		ID:       g.ID,
		Progress: g.Progress,
		Status:   string(g.Status),
	}, nil
}

// DeleteGoal removes a goal within the actor's scope.
func (s *Service) DeleteGoal(ctx context.Context, in DeleteGoalRequest) (*DeleteGoalResponse, error) {
	s.log.Info("deleting goal", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid goal id")
	}

	g, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, g.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete goal", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteGoalResponse{ID: id}, nil
}

// ListGoals retrieves the goals visible to the actor, paginated.
func (s *Service) ListGoals(ctx context.Context, in ListGoalsRequest) (*ListGoalsResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	scope, err := s.scopes.VisibleScope(ctx, in.Actor)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to resolve access scope", err)
	}

	s.log.Info("listing goals",
		zap.Int64("actor_id", in.Actor.ID),
		zap.Bool("scope_all", scope.All),
		zap.Int64("page", in.Page),
		zap.Int64("limit", in.Limit))

	goals, total, err := s.repo.List(ctx, scope.Filter(), in.Page, in.Limit)
	if err != nil {
		s.log.Error("failed to list goals", zap.Error(err))
		return nil, err
	}

	out := make([]Goal, len(goals))
	for i := range goals {
		out[i] = toDTO(&goals[i])
	}

	totalPages := int64(0)
	if in.Limit > 0 {
		totalPages = (total + in.Limit - 1) / in.Limit
	}

	return &ListGoalsResponse{
		Goals: out,
		Pagination: &Pagination{
			Total:      total,
			Page:       in.Page,
			Limit:      in.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

func toDTO(g *domain.PerformanceGoal) Goal {
	return Goal{
		ID:          g.ID,
		EmployeeID:  g.EmployeeID,
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		Progress:    g.Progress,
		DueDate:     g.DueDate,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
