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

	"github.com/arcanajournal/arcana/internal/journal/domain"
	httpapi "github.com/arcanajournal/arcana/internal/journal/http"
	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/internal/journal/store/drivers/sqlite"
	"github.com/arcanajournal/arcana/pkg/jwtx"
	"github.com/arcanajournal/arcana/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the journal service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger
	policy domain.RetentionPolicy

	// Core dependencies
	db   store.Store
	keys *jwtx.EdDSAKeypair

	// Services
	accountService *service.AccountService
	tokenService   *service.TokenService
	readingService *service.ReadingService
	tagService     *service.TagService
	querentService *service.QuerentService
	deckService    *service.DeckService
	spreadService  *service.SpreadService
	sweeper        *service.RetentionSweeper

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "journal-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.policy = domain.RetentionPolicy{
		Retention:         time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		NoticeWindow:      time.Duration(cfg.NotifyWindowDays) * 24 * time.Hour,
		FinalNoticeWindow: time.Duration(cfg.FinalNotifyWindowDays) * 24 * time.Hour,
	}
	if err := app.policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retention configuration: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Signing keys are ephemeral; tokens do not survive a restart.
	keys, err := jwtx.NewEphemeralKeypair()
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.cfg.SweepEnabled {
		app.sweeper.Start()
	} else {
		app.logger.Warn("retention sweeper disabled; deleted accounts will not be purged")
	}

	app.logger.Info("journal service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down journal service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the retention sweeper
	if app.cfg.SweepEnabled {
		app.sweeper.Stop()
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("journal service stopped")
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

// initServices initializes all business logic services
func (app *Application) initServices() {
	purger := &service.AccountPurger{Store: app.db}

	app.accountService = &service.AccountService{
		Store:  app.db,
		Purger: purger,
	}
	app.tokenService = &service.TokenService{
		Store:  app.db,
		Signer: app.keys,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}

	app.tagService = &service.TagService{Store: app.db}
	app.querentService = &service.QuerentService{Store: app.db}
	app.deckService = &service.DeckService{Store: app.db}
	app.spreadService = &service.SpreadService{Store: app.db}
	app.readingService = &service.ReadingService{
		Store:    app.db,
		Tags:     app.tagService,
		Querents: app.querentService,
		Decks:    app.deckService,
		Spreads:  app.spreadService,
	}

	app.sweeper = service.NewRetentionSweeper(
		app.db,
		&service.LogDispatcher{Logger: app.logger},
		purger,
		app.logger,
		app.policy,
		app.cfg.SweepInterval,
	)
	app.sweeper.DispatchTimeout = app.cfg.DispatchTimeout
	app.sweeper.BaseURL = app.cfg.BaseURL
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RetentionPolicy = app.policy
	router.AccountService = app.accountService
	router.TokenService = app.tokenService
	router.ReadingService = app.readingService
	router.TagService = app.tagService
	router.QuerentService = app.querentService
	router.DeckService = app.deckService
	router.SpreadService = app.spreadService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
