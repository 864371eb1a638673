package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/adapter/gin/handler"
	"hr-agent-service/internal/adapter/gin/middleware"
	domain "hr-agent-service/internal/domain/employee"
	redisclient "hr-agent-service/pkg/redis"
)

// Handlers bundles the HTTP handlers the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Employee   *handler.EmployeeHandler
	Team       *handler.TeamHandler
	Review     *handler.ReviewHandler
	Goal       *handler.GoalHandler
	TNA        *handler.TNAHandler
	Interview  *handler.InterviewHandler
	Onboarding *handler.OnboardingHandler
	Payroll    *handler.PayrollHandler
	Talent     *handler.TalentHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware.
func SetupRouter(
	h Handlers,
	tokens middleware.TokenValidator,
	employeeStore middleware.EmployeeGetter,
	rateLimit middleware.RateLimitConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimit, redisClient, log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "hr-agent-service",
		})
	})

	v1 := router.Group("/v1")

	v1.POST("/auth/login", h.Auth.Login)

	authed := v1.Group("")
	authed.Use(middleware.Auth(tokens, employeeStore, log))
	{
		authed.POST("/auth/password", h.Auth.ChangePassword)

		adminOnly := middleware.RequireRole(domain.RoleAdmin)
		managerOrAdmin := middleware.RequireRole(domain.RoleManager, domain.RoleAdmin)

		employees := authed.Group("/employees")
		{
			employees.POST("", adminOnly, h.Employee.CreateEmployee)
			employees.GET("", managerOrAdmin, h.Employee.ListEmployees)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.PUT("/:id", adminOnly, h.Employee.UpdateEmployee)
			employees.DELETE("/:id", adminOnly, h.Employee.DeleteEmployee)
		}

		teams := authed.Group("/teams", adminOnly)
		{
			teams.POST("/members", h.Team.AddMember)
			teams.GET("/:id/members", h.Team.ListMembers)
			teams.DELETE("/:id/members/:employee_id", h.Team.RemoveMember)
		}

		reviews := authed.Group("/reviews")
		{
			reviews.POST("", h.Review.CreateReview)
			reviews.GET("", h.Review.ListReviews)
			reviews.GET("/:id", h.Review.GetReview)
			reviews.PUT("/:id", h.Review.UpdateReview)
			reviews.DELETE("/:id", h.Review.DeleteReview)
		}

		goals := authed.Group("/goals")
		{
			goals.POST("", h.Goal.CreateGoal)
			goals.GET("", h.Goal.ListGoals)
			goals.GET("/:id", h.Goal.GetGoal)
			goals.PUT("/:id", h.Goal.UpdateGoal)
			goals.PATCH("/:id/progress", h.Goal.UpdateProgress)
			goals.DELETE("/:id", h.Goal.DeleteGoal)
		}

		tna := authed.Group("/tna")
		{
			tna.POST("", managerOrAdmin, h.TNA.CreateTNA)
			tna.GET("", h.TNA.ListTNA)
			tna.GET("/:id", h.TNA.GetTNA)
			tna.PUT("/:id", managerOrAdmin, h.TNA.UpdateTNA)
			tna.DELETE("/:id", managerOrAdmin, h.TNA.DeleteTNA)
		}

		authed.POST("/interviews/simulate", h.Interview.Simulate)
		authed.POST("/onboarding/run", managerOrAdmin, h.Onboarding.Run)
		authed.POST("/payroll/run", adminOnly, h.Payroll.Run)

		talent := authed.Group("/talent", managerOrAdmin)
		{
			talent.GET("/candidates", h.Talent.Candidates)
			talent.GET("/pipeline", h.Talent.Pipeline)
		}

		authed.GET("/dashboard/summary", managerOrAdmin, h.Dashboard.Summary)
	}

	return router
}
