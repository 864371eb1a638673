package tna

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/tna"
	"hr-agent-service/internal/usecase/access"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Repository defines the interface for TNA data access operations.
type Repository interface {
	Create(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainingNeedsAnalysis, error)
	Update(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.TrainingNeedsAnalysis, int64, error)
	CountPending(ctx context.Context) (int64, error)
}

// EmployeeGetter resolves employee references for existence checks.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id int64) (*empdomain.Employee, error)
}

// Service implements the business logic for training needs analysis.
// Regular employees can read their own records; creating and changing
// records is reserved for managers and admins within their scope.
type Service struct {
	repo      Repository
	employees EmployeeGetter
	scopes    *access.Resolver
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new TNA Service.
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
		s.log.Warn("tna access outside scope", zap.Int64("actor_id", actor.ID), zap.Int64("employee_id", employeeID))
		return pkgerrors.NewForbiddenError("employee is outside your scope")
	}
	return nil
}

// CreateTNA records a skill gap for an employee within the actor's scope.
func (s *Service) CreateTNA(ctx context.Context, in CreateTNARequest) (*CreateTNAResponse, error) {
	s.log.Info("creating tna record", zap.Int64("actor_id", in.Actor.ID), zap.Int64("employee_id", in.EmployeeID))

	if in.Actor.Role == empdomain.RoleUser {
		return nil, pkgerrors.NewForbiddenError("only managers and admins can create training analyses")
	}

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	if in.TargetLevel < in.CurrentLevel {
		return nil, pkgerrors.NewValidationError("target_level", "target level must not be below current level")
	}

	if err := s.requireScope(ctx, in.Actor, in.EmployeeID); err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &domain.TrainingNeedsAnalysis{
		EmployeeID:          in.EmployeeID,
		SkillArea:           in.SkillArea,
		CurrentLevel:        in.CurrentLevel,
		TargetLevel:         in.TargetLevel,
		Priority:            domain.Priority(in.Priority),
		RecommendedTraining: in.RecommendedTraining,
		Status:              domain.StatusPending,
	})
	if err != nil {
		s.log.Error("failed to create tna record", zap.Error(err))
		return nil, err
	}
	return &CreateTNAResponse{ID: id}, nil
}

// GetTNA retrieves a record the actor is allowed to see.
func (s *Service) GetTNA(ctx context.Context, in GetTNARequest) (*GetTNAResponse, error) {
	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid tna id")
	}

	t, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, t.EmployeeID); err != nil {
		return nil, err
	}

	return &GetTNAResponse{TNA: toDTO(t)}, nil
}

// UpdateTNA applies field changes to a record within the actor's scope.
func (s *Service) UpdateTNA(ctx context.Context, in UpdateTNARequest) (*UpdateTNAResponse, error) {
	s.log.Info("updating tna record", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if in.Actor.Role == empdomain.RoleUser {
		return nil, pkgerrors.NewForbiddenError("only managers and admins can update training analyses")
	}

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	t, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, t.EmployeeID); err != nil {
		return nil, err
	}

	if in.SkillArea != "" {
		t.SkillArea = in.SkillArea
	}
	if in.CurrentLevel != 0 {
		t.CurrentLevel = in.CurrentLevel
	}
	if in.TargetLevel != 0 {
		t.TargetLevel = in.TargetLevel
	}
	if in.Priority != "" {
		t.Priority = domain.Priority(in.Priority)
	}
	if in.RecommendedTraining != "" {
		t.RecommendedTraining = in.RecommendedTraining
	}
	if in.Status != "" {
		t.Status = domain.Status(in.Status)
	}

	if t.TargetLevel < t.CurrentLevel {
		return nil, pkgerrors.NewValidationError("target_level", "target level must not be below current level")
	}

	id, err := s.repo.Update(ctx, t)
	if err != nil {
		s.log.Error("failed to update tna record", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateTNAResponse{ID: id}, nil
}

// DeleteTNA removes a record within the actor's scope.
func (s *Service) DeleteTNA(ctx context.Context, in DeleteTNARequest) (*DeleteTNAResponse, error) {
	s.log.Info("deleting tna record", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if in.Actor.Role == empdomain.RoleUser {
		return nil, pkgerrors.NewForbiddenError("only managers and admins can delete training analyses")
	}

	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid tna id")
	}

	t, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.requireScope(ctx, in.Actor, t.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete tna record", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteTNAResponse{ID: id}, nil
}

// ListTNA retrieves the records visible to the actor, paginated.
func (s *Service) ListTNA(ctx context.Context, in ListTNARequest) (*ListTNAResponse, error) {
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

	s.log.Info("listing tna records",
		zap.Int64("actor_id", in.Actor.ID),
		zap.Bool("scope_all", scope.All),
		zap.Int64("page", in.Page),
		zap.Int64("limit", in.Limit))

	records, total, err := s.repo.List(ctx, scope.Filter(), in.Page, in.Limit)
	if err != nil {
		s.log.Error("failed to list tna records", zap.Error(err))
		return nil, err
	}

	out := make([]TNA, len(records))
	for i := range records {
		out[i] = toDTO(&records[i])
	}

	totalPages := int64(0)
	if in.Limit > 0 {
		totalPages = (total + in.Limit - 1) / in.Limit
	}

	return &ListTNAResponse{
		Records: out,
		Pagination: &Pagination{
			Total:      total,
			Page:       in.Page,
			Limit:      in.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

func toDTO(t *domain.TrainingNeedsAnalysis) TNA {
	return TNA{
		ID:                  t.ID,
		EmployeeID:          t.EmployeeID,
		SkillArea:           t.SkillArea,
		CurrentLevel:        t.CurrentLevel,
		TargetLevel:         t.TargetLevel,
		Priority:            string(t.Priority),
		RecommendedTraining: t.RecommendedTraining,
		Status:              string(t.Status),
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}
