package goal

import "context"

// Usecase defines the interface for performance goal operations.
type Usecase interface {
	CreateGoal(ctx context.Context, in CreateGoalRequest) (*CreateGoalResponse, error)
	GetGoal(ctx context.Context, in GetGoalRequest) (*GetGoalResponse, error)
	UpdateGoal(ctx context.Context, in UpdateGoalRequest) (*UpdateGoalResponse, error)
	UpdateProgress(ctx context.Context, in UpdateProgressRequest) (*UpdateProgressResponse, error)
	DeleteGoal(ctx context.Context, in DeleteGoalRequest) (*DeleteGoalResponse, error)
	ListGoals(ctx context.Context, in ListGoalsRequest) (*ListGoalsResponse, error)
}
