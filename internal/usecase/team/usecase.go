package team

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/team"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Repository defines the interface for team membership data access.
type Repository interface {
	AddMember(ctx context.Context, managerID, employeeID int64) (int64, error)
	RemoveMember(ctx context.Context, managerID, employeeID int64) error
	ListMembers(ctx context.Context, managerID int64) ([]domain.Member, error)
}

// EmployeeGetter resolves employee references for validation.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id int64) (*empdomain.Employee, error)
}

// Service implements team membership management. The router restricts
// these operations to admins.
type Service struct {
	repo      Repository
	employees EmployeeGetter
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new team Service.
func New(r Repository, employees EmployeeGetter, log *zap.Logger) *Service {
	return &Service{
		repo:      r,
		employees: employees,
		log:       log,
		validate:  validator.New(),
	}
}

// AddMember assigns an employee as a direct report of a manager.
func (s *Service) AddMember(ctx context.Context, in AddMemberRequest) (*AddMemberResponse, error) {
	s.log.Info("adding team member", zap.Int64("manager_id", in.ManagerID), zap.Int64("employee_id", in.EmployeeID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	if in.ManagerID == in.EmployeeID {
		return nil, pkgerrors.NewValidationError("employee_id", "an employee cannot report to themselves")
	}

	manager, err := s.employees.GetByID(ctx, in.ManagerID)
	if err != nil {
		return nil, err
	}
	if !manager.IsManager() && !manager.IsAdmin() {
		return nil, pkgerrors.NewValidationError("manager_id", "target manager does not hold a manager role")
	}

	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.AddMember(ctx, in.ManagerID, in.EmployeeID)
	if err != nil {
		s.log.Error("failed to add team member", zap.Error(err))
		return nil, err
	}

	return &AddMemberResponse{ID: id}, nil
}

// RemoveMember removes an employee from a manager's team.
func (s *Service) RemoveMember(ctx context.Context, in RemoveMemberRequest) (*RemoveMemberResponse, error) {
	s.log.Info("removing team member", zap.Int64("manager_id", in.ManagerID), zap.Int64("employee_id", in.EmployeeID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	if err := s.repo.RemoveMember(ctx, in.ManagerID, in.EmployeeID); err != nil {
		s.log.Error("failed to remove team member", zap.Error(err))
		return nil, err
	}

	return &RemoveMemberResponse{Removed: true}, nil
}

// ListMembers returns the members reporting to a manager, enriched with
// employee names where the employee record still exists.
func (s *Service) ListMembers(ctx context.Context, in ListMembersRequest) (*ListMembersResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	members, err := s.repo.ListMembers(ctx, in.ManagerID)
	if err != nil {
		s.log.Error("failed to list team members", zap.Int64("manager_id", in.ManagerID), zap.Error(err))
		return nil, err
	}

	out := make([]Member, 0, len(members))
	for _, m := range members {
		dto := Member{
			ID:         m.ID,
			ManagerID:  m.ManagerID,
			EmployeeID: m.EmployeeID,
			CreatedAt:  m.CreatedAt,
		}
		if emp, err := s.employees.GetByID(ctx, m.EmployeeID); err == nil {
			dto.Name = emp.Name
			dto.Email = emp.Email
			dto.Title = emp.Title
		}
		out = append(out, dto)
	}

	return &ListMembersResponse{Members: out}, nil
}
