package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hr-agent-service/cmd/api/infrastructure"
	"hr-agent-service/internal/adapter/cache"
	"hr-agent-service/internal/adapter/db/postgres"
	ginhandler "hr-agent-service/internal/adapter/gin/handler"
	"hr-agent-service/internal/adapter/gin/middleware"
	ginrouter "hr-agent-service/internal/adapter/gin/router"
	"hr-agent-service/internal/adapter/repository/cached"
	"hr-agent-service/internal/config"
	"hr-agent-service/internal/usecase/access"
	"hr-agent-service/internal/usecase/auth"
	"hr-agent-service/internal/usecase/dashboard"
	employeeuc "hr-agent-service/internal/usecase/employee"
	"hr-agent-service/internal/usecase/goal"
	"hr-agent-service/internal/usecase/interview"
	"hr-agent-service/internal/usecase/onboarding"
	"hr-agent-service/internal/usecase/payroll"
	"hr-agent-service/internal/usecase/review"
	"hr-agent-service/internal/usecase/talent"
	"hr-agent-service/internal/usecase/team"
	"hr-agent-service/internal/usecase/tna"
	redisclient "hr-agent-service/pkg/redis"
	"hr-agent-service/pkg/token"
)

// Container holds all application dependencies.
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DB           *gorm.DB
	RedisClient  *redisclient.Client
	TokenManager *token.Manager
	EmployeeRepo employeeuc.Repository
	RateLimit    middleware.RateLimitConfig
	Handlers     ginrouter.Handlers
}

// NewContainer creates and initializes all application dependencies.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	employeeCache := cache.NewRedisEmployeeCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)

	employeeRepo := cached.NewCachedEmployeeRepository(postgres.NewEmployeeRepoPG(db, l), employeeCache, l)
	teamRepo := postgres.NewTeamRepoPG(db, l)
	reviewRepo := postgres.NewReviewRepoPG(db, l)
	goalRepo := postgres.NewGoalRepoPG(db, l)
	tnaRepo := postgres.NewTNARepoPG(db, l)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	tokens := token.NewManager(cfg.Auth.JWTSecret, tokenTTL, cfg.Logger.ServiceName)

	scopes := access.NewResolver(teamRepo, l)

	employeeUC := employeeuc.New(employeeRepo, l)
	authUC := auth.New(employeeRepo, tokens, tokenTTL, l)
	reviewUC := review.New(reviewRepo, employeeRepo, scopes, l)
	goalUC := goal.New(goalRepo, employeeRepo, scopes, l)
	tnaUC := tna.New(tnaRepo, employeeRepo, scopes, l)
	teamUC := team.New(teamRepo, employeeRepo, l)
	interviewUC := interview.New(l)
	onboardingUC := onboarding.New(l)
	payrollUC := payroll.New(employeeRepo, l)
	talentUC := talent.New(cfg.Talent.FastAPIBase, time.Duration(cfg.Talent.TimeoutSeconds)*time.Second, l)
	dashboardUC := dashboard.New(employeeRepo, reviewRepo, goalRepo, tnaRepo, l)

	handlers := ginrouter.Handlers{
		Auth:       ginhandler.NewAuthHandler(authUC, l),
		Employee:   ginhandler.NewEmployeeHandler(employeeUC, l),
		Team:       ginhandler.NewTeamHandler(teamUC, l),
		Review:     ginhandler.NewReviewHandler(reviewUC, l),
		Goal:       ginhandler.NewGoalHandler(goalUC, l),
		TNA:        ginhandler.NewTNAHandler(tnaUC, l),
		Interview:  ginhandler.NewInterviewHandler(interviewUC, l),
		Onboarding: ginhandler.NewOnboardingHandler(onboardingUC, l),
		Payroll:    ginhandler.NewPayrollHandler(payrollUC, l),
		Talent:     ginhandler.NewTalentHandler(talentUC, l),
		Dashboard:  ginhandler.NewDashboardHandler(dashboardUC, l),
	}

	return &Container{
		Config:       cfg,
		Logger:       l,
		DB:           db,
		RedisClient:  rdb,
		TokenManager: tokens,
		EmployeeRepo: employeeRepo,
		RateLimit: middleware.RateLimitConfig{
			Enabled:           cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
		},
		Handlers: handlers,
	}, nil
}

// Close closes all resources held by the container.
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
