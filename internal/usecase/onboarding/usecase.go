package onboarding

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/employee"
)

// The fixed step sequence every new hire walks through. There are no
// compensating actions; a failed step is recorded and the run moves on.
var steps = []string{
	"account_provisioning",
	"document_verification",
	"equipment_assignment",
	"training_enrollment",
}

// Per-step mock pass probability, out of 100.
const stepPassPercent = 85

const (
	minStepDelayMs = 50
	maxStepDelayMs = 200
)

// Service runs the mock onboarding workflow over a batch of hires.
type Service struct {
	log      *zap.Logger
	validate *validator.Validate
	seedFn   func() int64
	sleep    bool
}

// Option configures a Service.
type Option func(*Service)

// WithSeedFunc overrides the default time-based seed source.
func WithSeedFunc(fn func() int64) Option {
	return func(s *Service) { s.seedFn = fn }
}

// WithoutLatency disables the per-step simulated delay.
func WithoutLatency() Option {
	return func(s *Service) { s.sleep = false }
}

// New creates a new onboarding Service.
func New(log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		validate: validator.New(),
		seedFn:   func() int64 { return time.Now().UnixNano() },
		sleep:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run walks each hire through the fixed onboarding steps, accumulating
// mock pass/fail results. A hire whose steps all pass is "completed",
// otherwise "partial"; the run status mirrors the worst hire. A non-zero
// Seed makes the outcome reproducible.
func (s *Service) Run(ctx context.Context, in RunRequest) (*RunResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	seed := in.Seed
	if seed == 0 {
		seed = s.seedFn()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))

	s.log.Info("starting onboarding run", zap.Int("hires", len(in.Hires)))
	start := time.Now()

	resp := &RunResponse{Results: make([]HireResult, 0, len(in.Hires))}
	for _, hire := range in.Hires {
		result := HireResult{
			Name:  hire.Name,
			Email: hire.Email,
			Steps: make([]StepResult, 0, len(steps)),
		}
		allPassed := true

		for _, step := range steps {
			if s.sleep {
				delay := time.Duration(minStepDelayMs+rng.IntN(maxStepDelayMs-minStepDelayMs)) * time.Millisecond
				select {
				case <-ctx.Done():
					s.log.Warn("onboarding run canceled", zap.String("hire", hire.Email), zap.String("step", step))
					return nil, ctx.Err()
				case <-time.After(delay):
				}
			}

			passed := rng.IntN(100) < stepPassPercent
			sr := StepResult{Step: step, Passed: passed}
			if passed {
				sr.Detail = fmt.Sprintf("%s succeeded for %s", step, hire.Email)
			} else {
				allPassed = false
				sr.Detail = fmt.Sprintf("%s failed for %s, manual follow-up required", step, hire.Email)
				s.log.Warn("onboarding step failed", zap.String("hire", hire.Email), zap.String("step", step))
			}
			result.Steps = append(result.Steps, sr)
		}

		if allPassed {
			result.Status = "completed"
			resp.Completed++
		} else {
			result.Status = "partial"
			resp.Partial++
		}
		resp.Results = append(resp.Results, result)
	}

	if resp.Partial == 0 {
		resp.Status = "completed"
	} else {
		resp.Status = "partial"
	}
	resp.DurationMs = time.Since(start).Milliseconds()

	s.log.Info("onboarding run finished",
		zap.Int("completed", resp.Completed),
		zap.Int("partial", resp.Partial),
		zap.String("status", resp.Status))

	return resp, nil
}
