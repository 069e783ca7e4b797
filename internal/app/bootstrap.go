package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/infrastructure/storage"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	uploads, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("init upload store: %w", err)
	}

	listingCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	a := New(cfg, db, uploads, listingCache, hub, logger)

	cleanup := func() error {
		return db.Close()
	}
	return a, cleanup, nil
}

// New wires the app against explicit dependencies so tests can pass fakes.
func New(
	cfg config.Config,
	db database.DB,
	uploads usecase.Uploader,
	listingCache usecase.ListingCache,
	hub *ws.Hub,
	logger *log.Logger,
) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository()
	notifRepo := repository.NewPostgresNotificationRepository(db)

	jobUC := usecase.NewJobService(jobRepo, uploads, listingCache, logger)
	applyUC := usecase.NewApplicationService(db, jobRepo, appRepo, notifRepo, ws.NewNotifier(hub), logger)
	notifUC := usecase.NewNotificationService(notifRepo, logger)

	reg := &routes.Registry{
		Health:        handler.NewHealthHandler(),
		Jobs:          handler.NewJobsHandler(jobUC),
		Applications:  handler.NewApplicationsHandler(applyUC),
		Notifications: handler.NewNotificationsHandler(notifUC),
		WS:            ws.NewHandler(hub, logger),
		UploadDir:     cfg.Uploads.Dir,
	}
	reg.Register(f)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
