package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "hr-agent-service/internal/domain/tna"
	pkgerrors "hr-agent-service/pkg/errors"
)

func seedTNA(t *testing.T, repo *TNARepoPG, rec domain.TrainingNeedsAnalysis) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &rec)
	require.NoError(t, err)
	return id
}

func TestTNARepoPG_CreateAndGet(t *testing.T) {
	repo := NewTNARepoPG(setupTestDB(t), zaptest.NewLogger(t))

	id := seedTNA(t, repo, domain.TrainingNeedsAnalysis{
		EmployeeID:          3,
		SkillArea:           "Kubernetes operations",
		CurrentLevel:        2,
		TargetLevel:         4,
		Priority:            domain.PriorityHigh,
		RecommendedTraining: "CKA preparation course",
		Status:              domain.StatusPending,
	})

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes operations", got.SkillArea)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestTNARepoPG_Update(t *testing.T) {
	repo := NewTNARepoPG(setupTestDB(t), zaptest.NewLogger(t))
	id := seedTNA(t, repo, domain.TrainingNeedsAnalysis{
		EmployeeID: 3, SkillArea: "Kubernetes operations",
		CurrentLevel: 2, TargetLevel: 4,
		Priority: domain.PriorityHigh, Status: domain.StatusPending,
	})

	_, err := repo.Update(context.Background(), &domain.TrainingNeedsAnalysis{
		ID: id, EmployeeID: 3, SkillArea: "Kubernetes operations",
		CurrentLevel: 3, TargetLevel: 4,
		Priority: domain.PriorityMedium, Status: domain.StatusInProgress,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentLevel)
	assert.Equal(t, domain.StatusInProgress, got.Status)
}

func TestTNARepoPG_Delete_NotFound(t *testing.T) {
	repo := NewTNARepoPG(setupTestDB(t), zaptest.NewLogger(t))

	_, err := repo.Delete(context.Background(), 999)

	require.Error(t, err)
	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestTNARepoPG_List_ScopeFilter(t *testing.T) {
	repo := NewTNARepoPG(setupTestDB(t), zaptest.NewLogger(t))
	seedTNA(t, repo, domain.TrainingNeedsAnalysis{EmployeeID: 3, SkillArea: "Go profiling", CurrentLevel: 1, TargetLevel: 3, Priority: domain.PriorityLow, Status: domain.StatusPending})
	seedTNA(t, repo, domain.TrainingNeedsAnalysis{EmployeeID: 5, SkillArea: "SQL tuning", CurrentLevel: 2, TargetLevel: 4, Priority: domain.PriorityHigh, Status: domain.StatusCompleted})

	all, total, err := repo.List(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	scoped, total, err := repo.List(context.Background(), []int64{5}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, scoped, 1)
	assert.Equal(t, "SQL tuning", scoped[0].SkillArea)
}

func TestTNARepoPG_CountPending(t *testing.T) {
	repo := NewTNARepoPG(setupTestDB(t), zaptest.NewLogger(t))
	seedTNA(t, repo, domain.TrainingNeedsAnalysis{EmployeeID: 3, SkillArea: "Go profiling", CurrentLevel: 1, TargetLevel: 3, Priority: domain.PriorityLow, Status: domain.StatusPending})
	seedTNA(t, repo, domain.TrainingNeedsAnalysis{EmployeeID: 5, SkillArea: "SQL tuning", CurrentLevel: 2, TargetLevel: 4, Priority: domain.PriorityHigh, Status: domain.StatusCompleted})
	seedTNA(t, repo, domain.TrainingNeedsAnalysis{EmployeeID: 7, SkillArea: "Public speaking", CurrentLevel: 1, TargetLevel: 2, Priority: domain.PriorityMedium, Status: domain.StatusPending})

	count, err := repo.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
