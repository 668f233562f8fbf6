package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/minerahub/dashboard/backend/internal/handlers"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/services"
	"github.com/minerahub/dashboard/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config, logger *zap.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.RequestIDWithConfig(eMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(eMiddleware.CORSWithConfig(cfg.CORSConfig()))
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("Request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("Request", fields...)
			return nil
		},
	}))
	logger.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, repos *repositories.Repositories, svc *services.Services, cfg *config.Config, logger *zap.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api/v1")

	// User routes
	userHandler := handlers.NewUserHandler(repos.Users, svc.Followers)
	userHandler.RegisterUserRoutes(api)
	logger.Info("User routes configured.")

	// Forum routes
	postHandler := handlers.NewPostHandler(svc.Forum)
	postHandler.RegisterPostRoutes(api)
	replyHandler := handlers.NewReplyHandler(svc.Forum)
	replyHandler.RegisterReplyRoutes(api)
	logger.Info("Post routes configured.")

	// Follower routes
	followHandler := handlers.NewFollowHandler(svc.Followers)
	followHandler.RegisterFollowRoutes(api)
	logger.Info("Follow routes configured.")

	// Inbox routes
	messageHandler := handlers.NewMessageHandler(svc.Inbox)
	messageHandler.RegisterMessageRoutes(api)
	logger.Info("Message routes configured.")

	// Social case routes
	socialCaseHandler := handlers.NewSocialCaseHandler(svc.SocialCases, cfg.RandomSeed)
	socialCaseHandler.RegisterSocialCaseRoutes(api)
	logger.Info("Social case routes configured.")

	// Community report routes
	reportHandler := handlers.NewReportHandler(svc.CommunityReports, cfg.RandomSeed)
	reportHandler.RegisterReportRoutes(api)
	logger.Info("Community report routes configured.")

	logger.Info("All routes configured.")
}
