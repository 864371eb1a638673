package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/team"
	pkgerrors "hr-agent-service/pkg/errors"
)

// ==================== MOCKS ====================

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AddMember(ctx context.Context, managerID, employeeID int64) (int64, error) {
	args := m.Called(ctx, managerID, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) RemoveMember(ctx context.Context, managerID, employeeID int64) error {
	args := m.Called(ctx, managerID, employeeID)
	return args.Error(0)
}

func (m *MockRepository) ListMembers(ctx context.Context, managerID int64) ([]domain.Member, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
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

func newService(t *testing.T) (*Service, *MockRepository, *MockEmployeeGetter) {
	repo := new(MockRepository)
	employees := new(MockEmployeeGetter)
	return New(repo, employees, zaptest.NewLogger(t)), repo, employees
}

// ==================== ADD MEMBER TESTS ====================

func TestAddMember_Success(t *testing.T) {
	svc, repo, employees := newService(t)
	employees.On("GetByID", mock.Anything, int64(2)).
		Return(&empdomain.Employee{ID: 2, Role: empdomain.RoleManager}, nil)
	employees.On("GetByID", mock.Anything, int64(5)).
		Return(&empdomain.Employee{ID: 5, Role: empdomain.RoleUser}, nil)
	repo.On("AddMember", mock.Anything, int64(2), int64(5)).Return(int64(7), nil)

	resp, err := svc.AddMember(context.Background(), AddMemberRequest{ManagerID: 2, EmployeeID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestAddMember_SelfReportRejected(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.AddMember(context.Background(), AddMemberRequest{ManagerID: 2, EmployeeID: 2})

	require.Error(t, err)
	var validationErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddMember_TargetNotAManager(t *testing.T) {
	svc, repo, employees := newService(t)
	employees.On("GetByID", mock.Anything, int64(3)).
		Return(&empdomain.Employee{ID: 3, Role: empdomain.RoleUser}, nil)

	_, err := svc.AddMember(context.Background(), AddMemberRequest{ManagerID: 3, EmployeeID: 5})

	require.Error(t, err)
	var validationErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "manager_id", validationErr.Field)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddMember_EmployeeNotFound(t *testing.T) {
	svc, repo, employees := newService(t)
	employees.On("GetByID", mock.Anything, int64(2)).
		Return(&empdomain.Employee{ID: 2, Role: empdomain.RoleManager}, nil)
	employees.On("GetByID", mock.Anything, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("employee", "employee not found"))

	_, err := svc.AddMember(context.Background(), AddMemberRequest{ManagerID: 2, EmployeeID: 99})

	require.Error(t, err)
	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddMember_DuplicateMembership(t *testing.T) {
	svc, repo, employees := newService(t)
	employees.On("GetByID", mock.Anything, int64(2)).
		Return(&empdomain.Employee{ID: 2, Role: empdomain.RoleManager}, nil)
	employees.On("GetByID", mock.Anything, int64(5)).
		Return(&empdomain.Employee{ID: 5, Role: empdomain.RoleUser}, nil)
	repo.On("AddMember", mock.Anything, int64(2), int64(5)).
		Return(int64(0), pkgerrors.NewAlreadyExistsError("team_member", "employee already reports to this manager"))

	_, err := svc.AddMember(context.Background(), AddMemberRequest{ManagerID: 2, EmployeeID: 5})

	require.Error(t, err)
	var existsErr *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

// ==================== REMOVE MEMBER TESTS ====================

func TestRemoveMember_Success(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("RemoveMember", mock.Anything, int64(2), int64(5)).Return(nil)

	resp, err := svc.RemoveMember(context.Background(), RemoveMemberRequest{ManagerID: 2, EmployeeID: 5})

	require.NoError(t, err)
	assert.True(t, resp.Removed)
}

func TestRemoveMember_NotAMember(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("RemoveMember", mock.Anything, int64(2), int64(5)).
		Return(pkgerrors.NewNotFoundError("team_member", "membership not found"))

	_, err := svc.RemoveMember(context.Background(), RemoveMemberRequest{ManagerID: 2, EmployeeID: 5})

	require.Error(t, err)
	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// ==================== LIST MEMBERS TESTS ====================

func TestListMembers_EnrichesWithEmployeeDetails(t *testing.T) {
	svc, repo, employees := newService(t)
	repo.On("ListMembers", mock.Anything, int64(2)).Return([]domain.Member{
		{ID: 1, ManagerID: 2, EmployeeID: 5},
		{ID: 2, ManagerID: 2, EmployeeID: 6},
	}, nil)
	employees.On("GetByID", mock.Anything, int64(5)).
		Return(&empdomain.Employee{ID: 5, Name: "Sam Park", Email: "sam@example.com", Title: "Engineer"}, nil)
	employees.On("GetByID", mock.Anything, int64(6)).
		Return(nil, pkgerrors.NewNotFoundError("employee", "employee not found"))

	resp, err := svc.ListMembers(context.Background(), ListMembersRequest{ManagerID: 2})

	require.NoError(t, err)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "Sam Park", resp.Members[0].Name)
	assert.Equal(t, "sam@example.com", resp.Members[0].Email)
	// Deleted employees stay in the listing, just without details.
	assert.Equal(t, int64(6), resp.Members[1].EmployeeID)
	assert.Empty(t, resp.Members[1].Name)
}

func TestListMembers_InvalidManagerID(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.ListMembers(context.Background(), ListMembersRequest{ManagerID: 0})

	require.Error(t, err)
	repo.AssertNotCalled(t, "ListMembers", mock.Anything, mock.Anything)
}
