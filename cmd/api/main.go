package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/db"
	apihttp "job-portal/internal/http"
	"job-portal/internal/metrics"
	"job-portal/internal/repository"
	"job-portal/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET not set, using insecure default secret")
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(cfg.DatabaseURL, logger); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	jobRepo := repository.NewPgJobRepository(pool)
	githubRepo := repository.NewPgGitHubLinkRepository(pool)

	var loginLimiter service.LoginRateLimiter
	if cfg.LoginRateLimitPerMinute > 0 {
		loginLimiter = service.NewMemoryLoginRateLimiter(time.Minute, cfg.LoginRateLimitPerMinute)
	}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else if cfg.LoginRateLimitPerMinute > 0 {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, cfg.LoginRateLimitPerMinute)
		}
		cancel()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authSvc := service.NewAuthService(logger, userRepo, jwtSvc, loginLimiter, cfg.BcryptCost)
	authSvc.SetMetrics(collector)
	profileSvc := service.NewProfileService(userRepo, profileRepo)
	jobSvc := service.NewJobService(jobRepo)
	githubSvc := service.NewGitHubService(githubRepo)

	router := apihttp.NewRouter(
		logger,
		apihttp.RouterOptions{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Metrics:        collector,
			Health: func(ctx context.Context) error {
				return pool.Ping(ctx)
			},
		},
		apihttp.JWTAuthMiddleware(logger, jwtSvc, collector),
		apihttp.NewAuthHandler(logger, authSvc),
		apihttp.NewProfileHandler(logger, profileSvc),
		apihttp.NewJobHandler(logger, jobSvc),
		apihttp.NewGitHubHandler(logger, githubSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
