package onboarding

import "context"

// Usecase defines the interface for bulk onboarding automation.
type Usecase interface {
	Run(ctx context.Context, in RunRequest) (*RunResponse, error)
}
