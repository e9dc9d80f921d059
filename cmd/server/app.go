package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/go-redis/redis/v8"

	"github.com/harwick/shelf-api/internal/config"
	"github.com/harwick/shelf-api/internal/events"
	"github.com/harwick/shelf-api/internal/platform/mailgun"
	"github.com/harwick/shelf-api/internal/platform/postgres"
	"github.com/harwick/shelf-api/internal/platform/redis"
	"github.com/harwick/shelf-api/internal/service/auth"
	"github.com/harwick/shelf-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces so handlers never see the concrete driver)
	storeStore store.StoreStore
	itemStore  store.ItemStore
	tagStore   store.TagStore
	userStore  store.UserStore

	// Auth services
	jwtService auth.JWTService
	hasher     *auth.BcryptVerifier
	revocation auth.RevocationStore

	// Event system
	eventEmitter events.EventEmitter

	validate *validator.Validate

	// Held only for cleanup; nil when Redis is not configured.
	redisClient *goredis.Client
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts core dependencies that must be
// established before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		validate: validator.New(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	app.hasher = auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	app.storeStore = postgres.NewPostgresStoreStore(db, logger)
	app.itemStore = postgres.NewPostgresItemStore(db, logger)
	app.tagStore = postgres.NewPostgresTagStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	if err := app.setupRevocationStore(ctx); err != nil {
		return nil, err
	}

	app.setupEventEmitter()

	logger.Info("application initialized successfully")
	return app, nil
}

// setupRevocationStore selects the token revocation backend. Redis is
// used when configured so revocations survive restarts and are shared
// across instances; otherwise an in-process store serves a single node.
func (app *application) setupRevocationStore(ctx context.Context) error {
	if app.config.Redis.URL == "" {
		app.logger.Info("token revocation using in-process store",
			"reason", "redis not configured")
		app.revocation = auth.NewMemoryRevocationStore()
		return nil
	}

	client, err := redis.Connect(ctx, app.config.Redis.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.redisClient = client
	app.revocation = redis.NewRevocationStore(client)
	app.logger.Info("token revocation using redis")
	return nil
}

// setupEventEmitter wires the in-memory event bus and, when Mailgun is
// configured, the welcome email handler.
func (app *application) setupEventEmitter() {
	emitter := events.NewInMemoryEventEmitter(app.logger)

	if app.config.Mailgun.Domain != "" && app.config.Mailgun.APIKey != "" {
		mailer := mailgun.NewMailer(
			app.config.Mailgun.Domain,
			app.config.Mailgun.APIKey,
			app.config.Mailgun.Sender,
			app.logger,
		)
		emitter.RegisterHandler(mailer)
		app.logger.Info("welcome email handler registered",
			"mailgun_domain", app.config.Mailgun.Domain)
	} else {
		app.logger.Info("welcome emails disabled",
			"reason", "mailgun not configured")
	}

	app.eventEmitter = emitter
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
