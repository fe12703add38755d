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

	httpapi "github.com/quizden/quizden/internal/quiz/http"
	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/internal/quiz/store/drivers/sqlite"
	"github.com/quizden/quizden/pkg/jwtx"
	"github.com/quizden/quizden/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the quiz API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db             store.Store
	accessVerifier jwtx.Verifier

	// Services
	tokenService        *service.TokenService
	authService         *service.AuthService
	oauthService        *service.OAuthService
	quizService         *service.QuizService
	scoreService        *service.ScoreService
	achievementService  *service.AchievementService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "quiz-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("quiz api starting", "port", app.cfg.Port, "version", BuildVersion)

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

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down quiz api...")

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

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("quiz api stopped")
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
func (app *Application) initServices() error {
	accessSigner, err := jwtx.NewHS256Signer([]byte(app.cfg.AccessSecret))
	if err != nil {
		return fmt.Errorf("access signer: %w", err)
	}
	refreshSigner, err := jwtx.NewHS256Signer([]byte(app.cfg.RefreshSecret))
	if err != nil {
		return fmt.Errorf("refresh signer: %w", err)
	}
	accessVerifier, err := jwtx.NewHS256Verifier([]byte(app.cfg.AccessSecret))
	if err != nil {
		return fmt.Errorf("access verifier: %w", err)
	}
	refreshVerifier, err := jwtx.NewHS256Verifier([]byte(app.cfg.RefreshSecret))
	if err != nil {
		return fmt.Errorf("refresh verifier: %w", err)
	}
	app.accessVerifier = accessVerifier

	app.tokenService = &service.TokenService{
		AccessSigner:    accessSigner,
		RefreshSigner:   refreshSigner,
		AccessVerifier:  accessVerifier,
		RefreshVerifier: refreshVerifier,
		AccessTTL:       jwtx.AccessTokenTTL,
		RefreshTTL:      jwtx.RefreshTokenTTL,
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: app.tokenService,
	}

	if app.cfg.GoogleEnabled() {
		app.oauthService = &service.OAuthService{
			Store:  app.db,
			Tokens: app.tokenService,
			Provider: service.NewGoogleAdapter(
				app.cfg.GoogleClientID,
				app.cfg.GoogleClientSecret,
				app.cfg.GoogleRedirectURL,
			),
			StateTTL: service.DefaultStateTTL,
		}
		app.logger.Info("google federation enabled")
	} else {
		app.logger.Info("google federation disabled; set GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URL to enable")
	}

	app.quizService = &service.QuizService{Store: app.db}
	app.scoreService = &service.ScoreService{Store: app.db}
	app.achievementService = &service.AchievementService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.accessVerifier,
		app.cfg.ClientOrigin,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.TokenService = app.tokenService
	router.OAuthService = app.oauthService // nil when federation is disabled
	router.QuizService = app.quizService
	router.ScoreService = app.scoreService
	router.AchievementService = app.achievementService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
