package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	domain "hr-agent-service/internal/domain/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, e *domain.Employee) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(employeeID int64, email, role string) (string, error) {
	args := m.Called(employeeID, email, role)
	return args.String(0), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockEmployeeRepo, *MockTokenIssuer) {
	repo := new(MockEmployeeRepo)
	tokens := new(MockTokenIssuer)
	svc := New(repo, tokens, time.Hour, zaptest.NewLogger(t))
	return svc, repo, tokens
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, tokens := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.Employee{
		ID: 1, Name: "Jane", Email: "jane@example.com", Role: domain.RoleManager,
		PasswordHash: hashOf(t, "correct-pass"),
	}, nil)
	tokens.On("Generate", int64(1), "jane@example.com", "MANAGER").Return("signed-token", nil)

	resp, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "correct-pass"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, "MANAGER", resp.Role)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever-pass"})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.UnauthorizedError{}, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.Employee{
		ID: 1, Email: "jane@example.com", PasswordHash: hashOf(t, "correct-pass"),
	}, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong-password"})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.UnauthorizedError{}, err)
}

func TestLogin_SameErrorForUnknownAndWrong(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)
	repo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.Employee{
		ID: 1, Email: "jane@example.com", PasswordHash: hashOf(t, "correct-pass"),
	}, nil)

	_, errUnknown := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever-pass"})
	_, errWrong := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong-password"})

	assert.EqualError(t, errWrong, errUnknown.Error())
}

func TestChangePassword_Success(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Employee{
		ID: 1, Email: "jane@example.com", PasswordHash: hashOf(t, "old-password"),
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("new-password")) == nil
	})).Return(int64(1), nil)

	resp, err := svc.ChangePassword(ctx, ChangePasswordRequest{
		EmployeeID:      1,
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.EmployeeID)
	repo.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo, _ := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Employee{
		ID: 1, PasswordHash: hashOf(t, "old-password"),
	}, nil)

	_, err := svc.ChangePassword(ctx, ChangePasswordRequest{
		EmployeeID:      1,
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.UnauthorizedError{}, err)
}
