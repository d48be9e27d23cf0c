package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Haryordeji/edu-sports-sub000/internal/api/http"
	"github.com/Haryordeji/edu-sports-sub000/internal/api/http/handlers"
	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/config"
	"github.com/Haryordeji/edu-sports-sub000/internal/events"
	"github.com/Haryordeji/edu-sports-sub000/internal/observability"
	"github.com/Haryordeji/edu-sports-sub000/internal/persistence"
	"github.com/Haryordeji/edu-sports-sub000/internal/repository"
	"github.com/Haryordeji/edu-sports-sub000/internal/service"
	"github.com/Haryordeji/edu-sports-sub000/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	classRepo := repository.NewClassRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	limiter := auth.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())

	authService := service.NewAuthService(*cfg, logger, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Limiter:           limiter,
		Dispatcher:        dispatcher,
	})
	userService := service.NewUserService(userRepo, logger, cfg.Auth.BcryptCost)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, dispatcher)
	classService := service.NewClassService(classRepo, userRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Feedback:       handlers.NewFeedbackHandler(feedbackService),
		Classes:        handlers.NewClassesHandler(classService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
