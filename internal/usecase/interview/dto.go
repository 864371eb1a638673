package interview

// SimulateRequest represents the request payload for a mock interview run.
type SimulateRequest struct {
	CandidateName string `validate:"required,min=2,max=100"`
	Role          string `validate:"required,min=2,max=100"`
	QuestionCount int    `validate:"omitempty,min=1,max=20"`
	Seed          int64  `validate:"omitempty"`
}

// QuestionResult holds the fabricated evaluation of a single question.
type QuestionResult struct {
	Number        int
	Question      string
	Communication int
	Technical     int
	Clarity       int
	Score         float64
}

// SimulateResponse represents the full mock interview outcome.
type SimulateResponse struct {
	CandidateName string
	Role          string
	Questions     []QuestionResult
	OverallScore  float64
	Verdict       string
	Summary       string
	DurationMs    int64
}
