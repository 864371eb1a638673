package tna

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/tna"
	"hr-agent-service/internal/usecase/access"
	pkgerrors "hr-agent-service/pkg/errors"
)

// ==================== MOCKS ====================

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.TrainingNeedsAnalysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingNeedsAnalysis), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.TrainingNeedsAnalysis, int64, error) {
	args := m.Called(ctx, employeeIDs, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TrainingNeedsAnalysis), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) CountPending(ctx context.Context) (int64, error) {
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

var (
	adminActor   = access.Actor{ID: 1, Role: empdomain.RoleAdmin}
	managerActor = access.Actor{ID: 2, Role: empdomain.RoleManager}
	userActor    = access.Actor{ID: 3, Role: empdomain.RoleUser}
)

func newService(t *testing.T) (*Service, *MockRepository, *MockEmployeeGetter, *MockTeamRepo) {
	repo := new(MockRepository)
	employees := new(MockEmployeeGetter)
	teams := new(MockTeamRepo)
	log := zaptest.NewLogger(t)
	svc := New(repo, employees, access.NewResolver(teams, log), log)
	return svc, repo, employees, teams
}

// ==================== CREATE TESTS ====================

func TestCreateTNA_ManagerForReport(t *testing.T) {
	svc, repo, employees, teams := newService(t)
	teams.On("ListReports", mock.Anything, int64(2)).Return([]int64{3}, nil)
	employees.On("GetByID", mock.Anything, int64(3)).Return(&empdomain.Employee{ID: 3}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.TrainingNeedsAnalysis) bool {
		return rec.EmployeeID == 3 && rec.Status == domain.StatusPending && rec.Priority == domain.PriorityHigh
	})).Return(int64(10), nil)

	resp, err := svc.CreateTNA(context.Background(), CreateTNARequest{
		Actor:        managerActor,
		EmployeeID:   3,
		SkillArea:    "Kubernetes operations",
		CurrentLevel: 2,
		TargetLevel:  4,
		Priority:     "HIGH",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestCreateTNA_UserForbidden(t *testing.T) {
	svc, repo, _, _ := newService(t)

	_, err := svc.CreateTNA(context.Background(), CreateTNARequest{
		Actor:        userActor,
		EmployeeID:   3,
		SkillArea:    "SQL tuning",
		CurrentLevel: 1,
		TargetLevel:  3,
		Priority:     "LOW",
	})

	require.Error(t, err)
	var forbiddenErr *pkgerrors.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTNA_TargetBelowCurrent(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.CreateTNA(context.Background(), CreateTNARequest{
		Actor:        adminActor,
		EmployeeID:   3,
		SkillArea:    "SQL tuning",
		CurrentLevel: 4,
		TargetLevel:  2,
		Priority:     "MEDIUM",
	})

	require.Error(t, err)
	var validationErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "target_level", validationErr.Field)
}

func TestCreateTNA_ManagerOutsideScope(t *testing.T) {
	svc, repo, _, teams := newService(t)
	teams.On("ListReports", mock.Anything, int64(2)).Return([]int64{3}, nil)

	_, err := svc.CreateTNA(context.Background(), CreateTNARequest{
		Actor:        managerActor,
		EmployeeID:   9,
		SkillArea:    "Public speaking",
		CurrentLevel: 1,
		TargetLevel:  2,
		Priority:     "LOW",
	})

	require.Error(t, err)
	var forbiddenErr *pkgerrors.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ==================== GET TESTS ====================

func TestGetTNA_UserReadsOwn(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.TrainingNeedsAnalysis{
		ID: 10, EmployeeID: 3, SkillArea: "Go profiling", Status: domain.StatusPending,
	}, nil)

	resp, err := svc.GetTNA(context.Background(), GetTNARequest{Actor: userActor, ID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Go profiling", resp.SkillArea)
}

func TestGetTNA_UserReadsOtherForbidden(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.TrainingNeedsAnalysis{
		ID: 10, EmployeeID: 7,
	}, nil)

	_, err := svc.GetTNA(context.Background(), GetTNARequest{Actor: userActor, ID: 10})

	require.Error(t, err)
	var forbiddenErr *pkgerrors.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
}

func TestGetTNA_NotFound(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, pkgerrors.NewNotFoundError("tna", "tna record not found"))

	_, err := svc.GetTNA(context.Background(), GetTNARequest{Actor: adminActor, ID: 99})

	require.Error(t, err)
	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// ==================== UPDATE TESTS ====================

func TestUpdateTNA_StatusProgression(t *testing.T) {
	svc, repo, _, teams := newService(t)
	teams.On("ListReports", mock.Anything, int64(2)).Return([]int64{3}, nil)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.TrainingNeedsAnalysis{
		ID: 10, EmployeeID: 3, SkillArea: "Go profiling",
		CurrentLevel: 2, TargetLevel: 4, Status: domain.StatusPending,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(rec *domain.TrainingNeedsAnalysis) bool {
		return rec.Status == domain.StatusInProgress && rec.SkillArea == "Go profiling"
	})).Return(int64(10), nil)

	resp, err := svc.UpdateTNA(context.Background(), UpdateTNARequest{
		Actor:  managerActor,
		ID:     10,
		Status: "IN_PROGRESS",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestUpdateTNA_UserForbidden(t *testing.T) {
	svc, repo, _, _ := newService(t)

	_, err := svc.UpdateTNA(context.Background(), UpdateTNARequest{
		Actor: userActor,
		ID:    10,
		Status: "COMPLETED",
	})

	require.Error(t, err)
	var forbiddenErr *pkgerrors.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTNA_TargetDroppedBelowCurrent(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.TrainingNeedsAnalysis{
		ID: 10, EmployeeID: 3, CurrentLevel: 3, TargetLevel: 5, Status: domain.StatusPending,
	}, nil)

	_, err := svc.UpdateTNA(context.Background(), UpdateTNARequest{
		Actor:       adminActor,
		ID:          10,
		TargetLevel: 2,
	})

	require.Error(t, err)
	var validationErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// ==================== DELETE TESTS ====================

func TestDeleteTNA_ManagerWithinScope(t *testing.T) {
	svc, repo, _, teams := newService(t)
	teams.On("ListReports", mock.Anything, int64(2)).Return([]int64{3}, nil)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.TrainingNeedsAnalysis{
		ID: 10, EmployeeID: 3,
	}, nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(int64(10), nil)

	resp, err := svc.DeleteTNA(context.Background(), DeleteTNARequest{Actor: managerActor, ID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestDeleteTNA_UserForbidden(t *testing.T) {
	svc, repo, _, _ := newService(t)

	_, err := svc.DeleteTNA(context.Background(), DeleteTNARequest{Actor: userActor, ID: 10})

	require.Error(t, err)
	var forbiddenErr *pkgerrors.ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// ==================== LIST TESTS ====================

func TestListTNA_UserScopedToSelf(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("List", mock.Anything, []int64{3}, int64(1), int64(10)).
		Return([]domain.TrainingNeedsAnalysis{{ID: 10, EmployeeID: 3}}, int64(1), nil)

	resp, err := svc.ListTNA(context.Background(), ListTNARequest{Actor: userActor})

	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	assert.Equal(t, int64(1), resp.Pagination.TotalPages)
}

func TestListTNA_AdminUnrestricted(t *testing.T) {
	svc, repo, _, _ := newService(t)
	repo.On("List", mock.Anything, []int64(nil), int64(2), int64(25)).
		Return([]domain.TrainingNeedsAnalysis{}, int64(60), nil)

	resp, err := svc.ListTNA(context.Background(), ListTNARequest{Actor: adminActor, Page: 2, Limit: 25})

	require.NoError(t, err)
	assert.Equal(t, int64(60), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
}
