package goal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/goal"
	"hr-agent-service/internal/usecase/access"
	pkgerrors "hr-agent-service/pkg/errors"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, g *domain.PerformanceGoal) (int64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.PerformanceGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceGoal), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, g *domain.PerformanceGoal) (int64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.PerformanceGoal, int64, error) {
	args := m.Called(ctx, employeeIDs, page, limit)
	return args.Get(0).([]domain.PerformanceGoal), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmployeeGetter struct {
	mock.Mock
}

func (m *MockEmployeeGetter) GetByID(ctx context.Context, id int64) (*empdomain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*empdomain.Employee), args.Error(1)
}

type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) ListReports(ctx context.Context, managerID int64) ([]int64, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]int64), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository, *MockEmployeeGetter, *MockTeamRepo) {
	repo := new(MockRepository)
	employees := new(MockEmployeeGetter)
	teams := new(MockTeamRepo)
	log := zaptest.NewLogger(t)
	svc := New(repo, employees, access.NewResolver(teams, log), log)
	return svc, repo, employees, teams
}

func TestCreateGoal_UserForSelf(t *testing.T) {
	svc, repo, employees, _ := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 3, Role: empdomain.RoleUser}

	employees.On("GetByID", ctx, int64(3)).Return(&empdomain.Employee{ID: 3}, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(g *domain.PerformanceGoal) bool {
		return g.EmployeeID == 3 && g.Status == domain.StatusNotStarted && g.Progress == 0
	})).Return(int64(7), nil)

	resp, err := svc.CreateGoal(ctx, CreateGoalRequest{
		Actor:      actor,
		EmployeeID: 3,
		Title:      "Learn Go profiling",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	repo.AssertExpectations(t)
}

func TestCreateGoal_UserForOtherForbidden(t *testing.T) {
	svc, _, _, _ := setupTestService(t)
	actor := access.Actor{ID: 3, Role: empdomain.RoleUser}

	_, err := svc.CreateGoal(context.Background(), CreateGoalRequest{
		Actor:      actor,
		EmployeeID: 4,
		Title:      "Someone else's goal",
	})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.ForbiddenError{}, err)
}

func TestUpdateProgress_CompletesAtHundred(t *testing.T) {
	svc, repo, _, _ := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 3, Role: empdomain.RoleUser}

	repo.On("GetByID", ctx, int64(7)).Return(&domain.PerformanceGoal{
		ID: 7, EmployeeID: 3, Status: domain.StatusInProgress, Progress: 60,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(g *domain.PerformanceGoal) bool {
		return g.Progress == 100 && g.Status == domain.StatusCompleted
	})).Return(int64(7), nil)

	resp, err := svc.UpdateProgress(ctx, UpdateProgressRequest{Actor: actor, ID: 7, Progress: 100})

	assert.NoError(t, err)
	assert.Equal(t, 100, resp.Progress)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	repo.AssertExpectations(t)
}

func TestUpdateProgress_StartsInProgress(t *testing.T) {
	svc, repo, _, _ := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 3, Role: empdomain.RoleUser}

	repo.On("GetByID", ctx, int64(7)).Return(&domain.PerformanceGoal{
		ID: 7, EmployeeID: 3, Status: domain.StatusNotStarted, Progress: 0,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(g *domain.PerformanceGoal) bool {
		return g.Progress == 25 && g.Status == domain.StatusInProgress
	})).Return(int64(7), nil)

	resp, err := svc.UpdateProgress(ctx, UpdateProgressRequest{Actor: actor, ID: 7, Progress: 25})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
}

func TestUpdateProgress_ZeroResetsToNotStarted(t *testing.T) {
	svc, repo, _, _ := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 3, Role: empdomain.RoleUser}

	repo.On("GetByID", ctx, int64(7)).Return(&domain.PerformanceGoal{
		ID: 7, EmployeeID: 3, Status: domain.StatusInProgress, Progress: 40,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(g *domain.PerformanceGoal) bool {
		return g.Progress == 0 && g.Status == domain.StatusNotStarted
	})).Return(int64(7), nil)

	resp, err := svc.UpdateProgress(ctx, UpdateProgressRequest{Actor: actor, ID: 7, Progress: 0})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusNotStarted), resp.Status)
}

func TestUpdateProgress_OutsideScopeForbidden(t *testing.T) {
	svc, repo, _, teams := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 2, Role: empdomain.RoleManager}

	repo.On("GetByID", ctx, int64(7)).Return(&domain.PerformanceGoal{
		ID: 7, EmployeeID: 99,
	}, nil)
	teams.On("ListReports", ctx, actor.ID).Return([]int64{3}, nil)

	_, err := svc.UpdateProgress(ctx, UpdateProgressRequest{Actor: actor, ID: 7, Progress: 50})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.ForbiddenError{}, err)
}

func TestUpdateGoal_CompletedStatusForcesProgress(t *testing.T) {
	svc, repo, _, _ := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 1, Role: empdomain.RoleAdmin}

	repo.On("GetByID", ctx, int64(7)).Return(&domain.PerformanceGoal{
		ID: 7, EmployeeID: 3, Status: domain.StatusInProgress, Progress: 70,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(g *domain.PerformanceGoal) bool {
		return g.Status == domain.StatusCompleted && g.Progress == 100
	})).Return(int64(7), nil)

	_, err := svc.UpdateGoal(ctx, UpdateGoalRequest{
		Actor:  actor,
		ID:     7,
		Status: string(domain.StatusCompleted),
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListGoals_ManagerScope(t *testing.T) {
	svc, repo, _, teams := setupTestService(t)
	ctx := context.Background()
	actor := access.Actor{ID: 2, Role: empdomain.RoleManager}

	teams.On("ListReports", ctx, actor.ID).Return([]int64{3, 4}, nil)
	repo.On("List", ctx, []int64{2, 3, 4}, int64(1), int64(10)).
		Return([]domain.PerformanceGoal{{ID: 1, EmployeeID: 3}}, int64(1), nil)

	resp, err := svc.ListGoals(ctx, ListGoalsRequest{Actor: actor})

	assert.NoError(t, err)
	assert.Len(t, resp.Goals, 1)
	repo.AssertExpectations(t)
}
