package interview

import "context"

// Usecase defines the interface for mock interview simulation.
type Usecase interface {
	Simulate(ctx context.Context, in SimulateRequest) (*SimulateResponse, error)
}
