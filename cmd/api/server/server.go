package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hr-agent-service/cmd/api/di"
	"hr-agent-service/internal/config"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
}

// New creates a new server instance from the DI container.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		Gin: SetupGinServer(
			c.Handlers,
			c.TokenManager,
			c.EmployeeRepo,
			c.RateLimit,
			c.RedisClient,
			":"+cfg.App.HTTPPort,
			l,
		),
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.Logger.Info("REST API running", zap.String("address", s.Gin.Addr))

	if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
