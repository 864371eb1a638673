package interview

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/employee"
)

const defaultQuestionCount = 5

// questionBank holds the generic prompts a simulated interviewer draws
// from; the role is interpolated where the prompt references it.
var questionBank = []string{
	"Walk me through a recent project you are proud of.",
	"How would you approach debugging a production incident as a %s?",
	"Describe a time you disagreed with a teammate and how it resolved.",
	"What does good code review culture look like to you?",
	"How do you prioritize when everything is urgent?",
	"Explain a technical concept from the %s role to a non-technical audience.",
	"What would you do in your first 90 days as a %s?",
	"Tell me about a failure and what you learned from it.",
	"How do you keep your skills current?",
	"Describe the most complex system you have worked on.",
	"How do you handle receiving critical feedback?",
	"What questions do you have about the %s position?",
	"Describe a time you had to deliver under a tight deadline.",
	"How would you improve a process you found inefficient?",
	"What motivates you to do your best work?",
	"Tell me about a time you mentored someone.",
	"How do you balance quality against delivery speed?",
	"What trade-offs would you consider when designing a new feature?",
	"Describe your ideal working environment.",
	"What makes you a strong fit for the %s role?",
}

// Latency bounds per simulated question, in milliseconds.
const (
	minQuestionDelayMs = 150
	maxQuestionDelayMs = 600
)

// Service fabricates interview outcomes from a seeded random source.
// No state is kept between calls, so concurrent simulations are safe.
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

// WithoutLatency disables the per-question simulated delay.
func WithoutLatency() Option {
	return func(s *Service) { s.sleep = false }
}

// New creates a new interview Service.
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

// Simulate runs a mock interview for the candidate and fabricates
// per-question scores, a verdict and a summary. A non-zero Seed makes the
// outcome reproducible. The simulated per-question latency honors context
// cancellation.
func (s *Service) Simulate(ctx context.Context, in SimulateRequest) (*SimulateResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	count := in.QuestionCount
	if count == 0 {
		count = defaultQuestionCount
	}

	seed := in.Seed
	if seed == 0 {
		seed = s.seedFn()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))

	s.log.Info("starting interview simulation",
		zap.String("candidate", in.CandidateName),
		zap.String("role", in.Role),
		zap.Int("questions", count))

	start := time.Now()
	order := rng.Perm(len(questionBank))
	questions := make([]QuestionResult, 0, count)
	var sum float64

	for i := 0; i < count; i++ {
		if s.sleep {
			delay := time.Duration(minQuestionDelayMs+rng.IntN(maxQuestionDelayMs-minQuestionDelayMs)) * time.Millisecond
			select {
			case <-ctx.Done():
				s.log.Warn("interview simulation canceled", zap.Int("question", i+1))
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		prompt := questionBank[order[i%len(order)]]
		q := QuestionResult{
			Number:        i + 1,
			Question:      interpolateRole(prompt, in.Role),
			Communication: 4 + rng.IntN(7),
			Technical:     3 + rng.IntN(8),
			Clarity:       4 + rng.IntN(7),
		}
		q.Score = round1(float64(q.Communication+q.Technical+q.Clarity) / 3)
		sum += q.Score
		questions = append(questions, q)
	}

	overall := round1(sum / float64(count))
	verdict := verdictFor(overall)

	return &SimulateResponse{
		CandidateName: in.CandidateName,
		Role:          in.Role,
		Questions:     questions,
		OverallScore:  overall,
		Verdict:       verdict,
		Summary: fmt.Sprintf("%s scored %.1f/10 across %d questions for the %s role. Verdict: %s.",
			in.CandidateName, overall, count, in.Role, verdict),
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func interpolateRole(prompt, role string) string {
	if strings.Contains(prompt, "%s") {
		return fmt.Sprintf(prompt, role)
	}
	return prompt
}

func verdictFor(overall float64) string {
	switch {
	case overall >= 8:
		return "STRONG_HIRE"
	case overall >= 6.5:
		return "HIRE"
	case overall >= 5:
		return "LEAN_HIRE"
	default:
		return "NO_HIRE"
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
