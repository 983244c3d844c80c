package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Chickencurry27/artisthub/internal/hub/http"
	"github.com/Chickencurry27/artisthub/internal/hub/mailer"
	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/internal/hub/storage"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/internal/hub/store/drivers/sqlite"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the hub service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	uploads *storage.LocalStorage
	mail    mailer.Mailer

	// Services
	sessionService       *service.SessionService
	authService          *service.AuthService
	passwordResetService *service.PasswordResetService
	usageService         *service.UsageService
	clientService        *service.ClientService
	projectService       *service.ProjectService
	songService          *service.SongService
	shareService         *service.ShareService
	commentService       *service.CommentService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hub-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	uploads, err := storage.NewLocalStorage(app.cfg.UploadsDir)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize uploads directory: %w", err)
	}
	app.uploads = uploads

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("hub service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hub service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hub service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer picks the SMTP mailer when a relay is configured, otherwise the
// log-only dev mailer.
func (app *Application) initMailer() {
	if app.cfg.SMTPAddr != "" {
		app.mail = &mailer.SMTPMailer{
			Addr:     app.cfg.SMTPAddr,
			From:     app.cfg.SMTPFrom,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
		}
		app.logger.Info("smtp mailer enabled", "addr", app.cfg.SMTPAddr)
		return
	}

	app.mail = &mailer.LogMailer{Logger: app.logger}
	app.logger.Info("dev mailer enabled; reset links are logged, not sent")
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:  app.db,
		TTL:    app.cfg.SessionTTL,
		Secure: app.cfg.Env != "dev",
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Sessions: app.sessionService,
	}

	app.passwordResetService = &service.PasswordResetService{
		Store:    app.db,
		Sessions: app.sessionService,
		Mailer:   app.mail,
		BaseURL:  app.cfg.BaseURL,
		TTL:      app.cfg.ResetTTL,
	}

	app.usageService = &service.UsageService{Store: app.db}
	app.clientService = &service.ClientService{Store: app.db, Usage: app.usageService}
	app.projectService = &service.ProjectService{Store: app.db, Usage: app.usageService}
	app.songService = &service.SongService{Store: app.db, Usage: app.usageService}
	app.shareService = &service.ShareService{
		Store:   app.db,
		BaseURL: app.cfg.BaseURL,
		TTL:     app.cfg.ShareTTL,
	}
	app.commentService = &service.CommentService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.uploads, app.logger)

	// Wire services to router
	router.SessionService = app.sessionService
	router.AuthService = app.authService
	router.PasswordResetService = app.passwordResetService
	router.UsageService = app.usageService
	router.ClientService = app.clientService
	router.ProjectService = app.projectService
	router.SongService = app.songService
	router.ShareService = app.shareService
	router.CommentService = app.commentService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
