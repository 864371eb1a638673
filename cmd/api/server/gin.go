package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"hr-agent-service/internal/adapter/gin/middleware"
	ginrouter "hr-agent-service/internal/adapter/gin/router"
	redisclient "hr-agent-service/pkg/redis"
)

// SetupGinServer creates and configures the REST API server.
func SetupGinServer(
	handlers ginrouter.Handlers,
	tokens middleware.TokenValidator,
	employees middleware.EmployeeGetter,
	rateLimit middleware.RateLimitConfig,
	redisClient *redisclient.Client,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(handlers, tokens, employees, rateLimit, redisClient, l)

	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
