package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/diretrix/helpdesk/internal/api/http"
	"github.com/diretrix/helpdesk/internal/api/http/handlers"
	"github.com/diretrix/helpdesk/internal/auth"
	"github.com/diretrix/helpdesk/internal/config"
	"github.com/diretrix/helpdesk/internal/events"
	"github.com/diretrix/helpdesk/internal/observability"
	"github.com/diretrix/helpdesk/internal/persistence"
	"github.com/diretrix/helpdesk/internal/repository"
	"github.com/diretrix/helpdesk/internal/service"
	"github.com/diretrix/helpdesk/internal/storage"
	"github.com/diretrix/helpdesk/internal/worker"
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
	ticketRepo := repository.NewTicketRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	sessions := auth.NewSessionRegistry(redis.Client, cfg.Auth.SessionTTL())
	sessions.Subscribe(func(change auth.SessionChange) {
		if change.Started {
			logger.Info("session started", zap.String("user_id", change.UserID))
			return
		}
		logger.Info("session ended", zap.String("user_id", change.UserID))
	})

	dispatcher := events.NewInMemoryDispatcher()
	attachments := storage.NewAttachmentStore(redis.Client)

	authService := service.NewAuthService(cfg.Auth, userRepo, sessions)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:      ticketRepo,
		UserRepo:        userRepo,
		ActivityRepo:    activityRepo,
		AttachmentStore: attachments,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Attachment.MaxSizeBytes),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
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
