package talent

import "context"

// Result carries the upstream response verbatim.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Usecase defines the interface for proxied talent-acquisition reads.
type Usecase interface {
	Candidates(ctx context.Context, rawQuery string) (*Result, error)
	Pipeline(ctx context.Context, rawQuery string) (*Result, error)
}
