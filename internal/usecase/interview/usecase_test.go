package interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	pkgerrors "hr-agent-service/pkg/errors"
)

func TestSimulate_SeededRunsAreReproducible(t *testing.T) {
	svc := New(zaptest.NewLogger(t), WithoutLatency())
	ctx := context.Background()

	req := SimulateRequest{
		CandidateName: "Alex Chen",
		Role:          "Backend Engineer",
		QuestionCount: 5,
		Seed:          42,
	}

	first, err := svc.Simulate(ctx, req)
	require.NoError(t, err)
	second, err := svc.Simulate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.Verdict, second.Verdict)
	require.Len(t, second.Questions, 5)
	for i := range first.Questions {
		assert.Equal(t, first.Questions[i], second.Questions[i])
	}
}

func TestSimulate_DefaultQuestionCount(t *testing.T) {
	svc := New(zaptest.NewLogger(t), WithoutLatency())

	resp, err := svc.Simulate(context.Background(), SimulateRequest{
		CandidateName: "Alex Chen",
		Role:          "Backend Engineer",
		Seed:          1,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Questions, defaultQuestionCount)
}

func TestSimulate_ScoresWithinBounds(t *testing.T) {
	svc := New(zaptest.NewLogger(t), WithoutLatency())

	resp, err := svc.Simulate(context.Background(), SimulateRequest{
		CandidateName: "Alex Chen",
		Role:          "Backend Engineer",
		QuestionCount: 20,
		Seed:          7,
	})

	require.NoError(t, err)
	for _, q := range resp.Questions {
		assert.GreaterOrEqual(t, q.Communication, 1)
		assert.LessOrEqual(t, q.Communication, 10)
		assert.GreaterOrEqual(t, q.Technical, 1)
		assert.LessOrEqual(t, q.Technical, 10)
		assert.GreaterOrEqual(t, q.Clarity, 1)
		assert.LessOrEqual(t, q.Clarity, 10)
	}
	assert.GreaterOrEqual(t, resp.OverallScore, 1.0)
	assert.LessOrEqual(t, resp.OverallScore, 10.0)
	assert.Contains(t, []string{"STRONG_HIRE", "HIRE", "LEAN_HIRE", "NO_HIRE"}, resp.Verdict)
}

func TestSimulate_CanceledContext(t *testing.T) {
	svc := New(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Simulate(ctx, SimulateRequest{
		CandidateName: "Alex Chen",
		Role:          "Backend Engineer",
		QuestionCount: 3,
		Seed:          9,
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_ValidationError(t *testing.T) {
	svc := New(zaptest.NewLogger(t), WithoutLatency())

	_, err := svc.Simulate(context.Background(), SimulateRequest{
		CandidateName: "A", // too short
		Role:          "Backend Engineer",
	})

	assert.Error(t, err)
	assert.IsType(t, &pkgerrors.ValidationError{}, err)
}
