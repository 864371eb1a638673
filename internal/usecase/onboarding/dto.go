package onboarding

// Hire identifies a new hire to onboard.
type Hire struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email"`
	Title string `validate:"omitempty,max=100"`
}

// RunRequest represents the request payload for an onboarding run.
type RunRequest struct {
	Hires []Hire `validate:"required,min=1,max=50,dive"`
	Seed  int64  `validate:"omitempty"`
}

// StepResult holds the outcome of one onboarding step for one hire.
type StepResult struct {
	Step   string
	Passed bool
	Detail string
}

// HireResult accumulates the step outcomes for a single hire.
type HireResult struct {
	Name   string
	Email  string
	Steps  []StepResult
	Status string
}

// RunResponse represents the aggregate outcome of an onboarding run.
type RunResponse struct {
	Results    []HireResult
	Completed  int
	Partial    int
	Status     string
	DurationMs int64
}
