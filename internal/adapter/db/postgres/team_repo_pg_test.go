package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	pkgerrors "hr-agent-service/pkg/errors"
)

func TestTeamRepoPG_AddAndListReports(t *testing.T) {
	repo := NewTeamRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.AddMember(ctx, 2, 5)
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, 2, 3)
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, 9, 7)
	require.NoError(t, err)

	reports, err := repo.ListReports(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, reports)

	reports, err = repo.ListReports(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestTeamRepoPG_AddMember_DuplicateRejected(t *testing.T) {
	repo := NewTeamRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.AddMember(ctx, 2, 5)
	require.NoError(t, err)

	_, err = repo.AddMember(ctx, 2, 5)
	assert.Error(t, err)
}

func TestTeamRepoPG_RemoveMember(t *testing.T) {
	repo := NewTeamRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.AddMember(ctx, 2, 5)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveMember(ctx, 2, 5))

	reports, err := repo.ListReports(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestTeamRepoPG_RemoveMember_NotFound(t *testing.T) {
	repo := NewTeamRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	err := repo.RemoveMember(context.Background(), 2, 5)

	require.Error(t, err)
	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestTeamRepoPG_ListMembers(t *testing.T) {
	repo := NewTeamRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.AddMember(ctx, 2, 5)
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, 2, 3)
	require.NoError(t, err)

	members, err := repo.ListMembers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, int64(3), members[0].EmployeeID)
	assert.Equal(t, int64(5), members[1].EmployeeID)
	assert.Equal(t, int64(2), members[0].ManagerID)
}
