package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "call-summary/docs" // swagger spec
	apierrors "call-summary/internal/api/errors"
	"call-summary/internal/api/middleware"
	"call-summary/internal/api/v1/handlers"
	v1routes "call-summary/internal/api/v1/routes"
	"call-summary/internal/config"
)

// Version is reported by the welcome route
const Version = "1.0.0"

// Server represents the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates the API server. registry is scraped by /metrics.
func NewServer(cfg *config.Config, processor handlers.Processor, registry *prometheus.Registry, logger *zap.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	cors := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		cors.AllowOrigins = cfg.Server.CORSOrigins
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cors))

	router.GET("/", welcome)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	container := &v1routes.HandlerContainer{
		Summary: handlers.NewSummaryHandler(processor, cfg.Credentials),
	}
	maxBytes := int64(cfg.Server.MaxUploadMB) << 20
	api := router.Group("/api", middleware.MaxBodySize(maxBytes))
	v1routes.RegisterRoutes(api, container)

	router.NoRoute(func(c *gin.Context) {
		middleware.HandleError(c, apierrors.NewNotFoundError(c.Request.URL.Path))
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// welcome handles GET /
//
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Welcome to the Call Summarizer API",
		"version":       Version,
		"documentation": "/swagger/index.html",
		"endpoints": gin.H{
			"health":           "/health",
			"metrics":          "/metrics",
			"generate_summary": "/api/generate-summary",
		},
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
