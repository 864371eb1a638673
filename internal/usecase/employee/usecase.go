package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "hr-agent-service/internal/domain/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Repository defines the interface for employee data access operations.
type Repository interface {
	Create(ctx context.Context, e *domain.Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, query string, page, limit int64) ([]domain.Employee, int64, error)
	ListAll(ctx context.Context) ([]domain.Employee, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

// Service implements the business logic for employee management.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new employee Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// FormatValidationError converts validator.ValidationErrors into a field-level
// validation error suitable for a 400 response.
func FormatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
}

// CreateEmployee creates a new employee after validating the request and
// checking email uniqueness. The initial password is bcrypt-hashed.
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeRequest) (*CreateEmployeeResponse, error) {
	s.log.Info("creating employee", zap.String("name", in.Name), zap.String("email", in.Email), zap.String("role", in.Role))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, FormatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, pkgerrors.NewAlreadyExistsError("employee", "email already exists")
	}

	if in.ManagerID > 0 {
		if _, err := s.repo.GetByID(ctx, in.ManagerID); err != nil {
			s.log.Warn("manager not found", zap.Int64("manager_id", in.ManagerID))
			return nil, pkgerrors.NewNotFoundError("manager", fmt.Sprintf("manager not found: id=%d", in.ManagerID))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	id, err := s.repo.Create(ctx, &domain.Employee{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.Role(in.Role),
		Department:   in.Department,
		Title:        in.Title,
		ManagerID:    in.ManagerID,
		HiredAt:      in.HiredAt,
	})
	if err != nil {
		s.log.Error("failed to create employee", zap.Error(err))
		return nil, err
	}
	return &CreateEmployeeResponse{ID: id}, nil
}

// UpdateEmployee updates an existing employee, preserving fields left empty.
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeRequest) (*UpdateEmployeeResponse, error) {
	s.log.Info("updating employee", zap.Int64("id", in.ID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, FormatValidationError(err)
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && in.Email != current.Email {
		existing, err := s.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
			return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
		}
		if existing != nil && existing.ID != in.ID {
			s.log.Warn("email already exists", zap.String("email", in.Email), zap.Int64("existing_id", existing.ID))
			return nil, pkgerrors.NewAlreadyExistsError("employee", "email already exists")
		}
		current.Email = in.Email
	}

	if in.Name != "" {
		current.Name = in.Name
	}
	if in.Role != "" {
		current.Role = domain.Role(in.Role)
	}
	if in.Department != "" {
		current.Department = in.Department
	}
	if in.Title != "" {
		current.Title = in.Title
	}
	if in.ManagerID > 0 {
		if _, err := s.repo.GetByID(ctx, in.ManagerID); err != nil {
			return nil, pkgerrors.NewNotFoundError("manager", fmt.Sprintf("manager not found: id=%d", in.ManagerID))
		}
		current.ManagerID = in.ManagerID
	}

	current.PasswordHash = ""
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			s.log.Error("failed to hash password", zap.Error(err))
			return nil, pkgerrors.NewInternalError("failed to hash password", err)
		}
		current.PasswordHash = string(hash)
	}

	id, err := s.repo.Update(ctx, current)
	if err != nil {
		s.log.Error("failed to update employee", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateEmployeeResponse{ID: id}, nil
}

// DeleteEmployee deletes an employee by ID.
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeRequest) (*DeleteEmployeeResponse, error) {
	s.log.Info("deleting employee", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		s.log.Warn("delete employee validation failed", zap.Int64("id", in.ID))
		return nil, pkgerrors.NewValidationError("id", "invalid employee id")
	}

	id, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete employee", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteEmployeeResponse{ID: id}, nil
}

// GetEmployee retrieves an employee by ID.
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeRequest) (*GetEmployeeResponse, error) {
	if in.ID <= 0 {
		s.log.Warn("get employee validation failed", zap.Int64("id", in.ID))
		return nil, pkgerrors.NewValidationError("id", "invalid employee id")
	}

	e, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to get employee", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &GetEmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       string(e.Role),
		Department: e.Department,
		Title:      e.Title,
		ManagerID:  e.ManagerID,
		HiredAt:    e.HiredAt,
	}, nil
}

// ListEmployees retrieves a paginated list of employees with optional search.
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesRequest) (*ListEmployeesResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	s.log.Info("listing employees", zap.String("query", in.Query), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	domainEmployees, total, err := s.repo.List(ctx, in.Query, in.Page, in.Limit)
	if err != nil {
		if strings.Contains(err.Error(), "invalid search query") {
			s.log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
			return nil, pkgerrors.NewValidationError("query", "invalid search query")
		}
		s.log.Error("failed to list employees", zap.Error(err))
		return nil, err
	}

	employees := make([]Employee, len(domainEmployees))
	for i, de := range domainEmployees {
		employees[i] = Employee{
			ID:         de.ID,
			Name:       de.Name,
			Email:      de.Email,
			Role:       string(de.Role),
			Department: de.Department,
			Title:      de.Title,
			ManagerID:  de.ManagerID,
			HiredAt:    de.HiredAt,
		}
	}

	totalPages := int64(0)
	if in.Limit > 0 {
		totalPages = (total + in.Limit - 1) / in.Limit
	}

	return &ListEmployeesResponse{
		Employees: employees,
		Pagination: &Pagination{
			Total:      total,
			Page:       in.Page,
			Limit:      in.Limit,
			TotalPages: totalPages,
		},
	}, nil
}
