package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/metrics"
)

// HealthCheck verifica dependencias externas para GET /healthz.
type HealthCheck func(ctx context.Context) error

// RouterOptions agrupa piezas opcionales del router.
type RouterOptions struct {
	AllowedOrigins []string
	Metrics        *metrics.Collector
	Health         HealthCheck
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	opts RouterOptions,
	authGate gin.HandlerFunc,
	authH *AuthHandler,
	profileH *ProfileHandler,
	jobH *JobHandler,
	githubH *GitHubHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, metricas y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	if opts.Metrics != nil {
		r.Use(metricsMiddleware(opts.Metrics))
	}
	r.Use(corsMiddleware(opts.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the API")
	})
	r.GET("/healthz", healthHandler(logger, opts.Health))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/github", githubH.LinkGitHub)

	api := r.Group("/api")
	api.POST("/profile", authGate, profileH.SaveProfile)
	api.GET("/profile", authGate, profileH.GetOwnProfile)
	api.GET("/profiles", authGate, profileH.ListProfiles)
	api.GET("/profile/:email", profileH.GetProfileByEmail)
	api.POST("/jobs", jobH.CreateJob)
	api.GET("/jobs", jobH.ListJobs)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// metricsMiddleware registra cada request usando la ruta de gin como label.
func metricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		collector.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func healthHandler(logger *zap.Logger, check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				logger.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
