package auth

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "hr-agent-service/internal/domain/employee"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Usecase defines the interface for authentication operations.
type Usecase interface {
	Login(ctx context.Context, in LoginRequest) (*LoginResponse, error)
	ChangePassword(ctx context.Context, in ChangePasswordRequest) (*ChangePasswordResponse, error)
}

// EmployeeRepository is the slice of employee data access login needs.
type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (int64, error)
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	Generate(employeeID int64, email, role string) (string, error)
}

// Service implements login and password management.
type Service struct {
	repo     EmployeeRepository
	tokens   TokenIssuer
	tokenTTL time.Duration
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new auth Service.
func New(repo EmployeeRepository, tokens TokenIssuer, tokenTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
		validate: validator.New(),
	}
}

// Login verifies credentials and issues an access token.
// Invalid email and invalid password produce the same error so the
// endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("login validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	e, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to look up employee for login", zap.Error(err))
		return nil, pkgerrors.NewInternalError("login failed", err)
	}
	if e == nil {
		s.log.Warn("login for unknown email", zap.String("email", in.Email))
		return nil, pkgerrors.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.Password)); err != nil {
		s.log.Warn("login password mismatch", zap.Int64("employee_id", e.ID))
		return nil, pkgerrors.NewUnauthorizedError("invalid credentials")
	}

	tok, err := s.tokens.Generate(e.ID, e.Email, string(e.Role))
	if err != nil {
		s.log.Error("failed to issue token", zap.Int64("employee_id", e.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to issue token", err)
	}

	s.log.Info("employee logged in", zap.Int64("employee_id", e.ID), zap.String("role", string(e.Role)))

	return &LoginResponse{
		Token:      tok,
		EmployeeID: e.ID,
		Name:       e.Name,
		Role:       string(e.Role),
		ExpiresIn:  int64(s.tokenTTL.Seconds()),
	}, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, in ChangePasswordRequest) (*ChangePasswordResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("change password validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	e, err := s.repo.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		s.log.Warn("change password mismatch", zap.Int64("employee_id", e.ID))
		return nil, pkgerrors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("failed to hash new password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	e.PasswordHash = string(hash)
	if _, err := s.repo.Update(ctx, e); err != nil {
		s.log.Error("failed to store new password", zap.Int64("employee_id", e.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("password changed", zap.Int64("employee_id", e.ID))
	return &ChangePasswordResponse{EmployeeID: e.ID}, nil
}
