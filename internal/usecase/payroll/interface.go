package payroll

import "context"

// Usecase defines the interface for mock payroll processing.
type Usecase interface {
	Run(ctx context.Context, in RunRequest) (*RunResponse, error)
}
