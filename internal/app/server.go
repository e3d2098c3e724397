// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"talento_backend/internal/application"
	"talento_backend/internal/careers"
	"talento_backend/internal/common"
	"talento_backend/internal/config"
	"talento_backend/internal/contact"
	"talento_backend/internal/firebase"
	"talento_backend/internal/gateway"
	"talento_backend/internal/jobs"
	"talento_backend/internal/middleware"
	"talento_backend/internal/profile"
	"talento_backend/internal/shared"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	gatewayHandler     *gateway.Handler
	profileHandler     *profile.Handler
	applicationHandler *application.Handler
	contactHandler     *contact.Handler
	careersHandler     *careers.Handler

	// Jobs
	cvCleanupJob *jobs.CVCleanupJob

	// Middleware instances
	authMW      gin.HandlerFunc
	adminRoleMW gin.HandlerFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	gatewayHandler *gateway.Handler,
	profileHandler *profile.Handler,
	applicationHandler *application.Handler,
	contactHandler *contact.Handler,
	careersHandler *careers.Handler,
	cvCleanupJob *jobs.CVCleanupJob,
	db *gorm.DB,
	firebaseService firebase.Service,
	userService shared.Service,
) (*Server, error) {
	if err := db.AutoMigrate(
		&profile.Profile{},
		&application.CandidateApplication{},
		&contact.ContactForm{},
	); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Create middleware instances
	authMW := middleware.AuthMiddleware(firebaseService, userService, logger.Named("AuthMiddleware"))
	adminRoleMW := middleware.RoleAuthMiddleware(common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Talento API is healthy!"})
	})

	// Uploaded files (profile photos, CVs) are served from local storage.
	router.Static("/files", cfg.StoragePath)

	v1 := router.Group("/api/v1")

	gatewayHandler.RegisterRoutes(v1, authMW)
	profileHandler.RegisterRoutes(v1, authMW)
	applicationHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	contactHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	careersHandler.RegisterRoutes(v1)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:         httpServer,
		router:             router,
		cfg:                cfg,
		logger:             logger,
		gatewayHandler:     gatewayHandler,
		profileHandler:     profileHandler,
		applicationHandler: applicationHandler,
		contactHandler:     contactHandler,
		careersHandler:     careersHandler,
		cvCleanupJob:       cvCleanupJob,
		authMW:             authMW,
		adminRoleMW:        adminRoleMW,
	}, nil
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	if s.cvCleanupJob != nil {
		if err := s.cvCleanupJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start CV cleanup job", zap.Error(err))
		}
	} else {
		s.logger.Info("CV cleanup job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.cvCleanupJob != nil {
		s.cvCleanupJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
