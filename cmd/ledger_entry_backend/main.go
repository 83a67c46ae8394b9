package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/ledger_entry_app/internal/adapters/ledger"
	"github.com/SscSPs/ledger_entry_app/internal/adapters/sales"
	portsrepo "github.com/SscSPs/ledger_entry_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_entry_app/internal/core/services"
	"github.com/SscSPs/ledger_entry_app/internal/handlers"
	"github.com/SscSPs/ledger_entry_app/internal/middleware"
	"github.com/SscSPs/ledger_entry_app/internal/platform/config"
	"github.com/SscSPs/ledger_entry_app/internal/repositories/memory"
	"github.com/SscSPs/ledger_entry_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Ledger Entry API
// @version 1.0
// @description Draft-session API for recording bookkeeping events and submitting them to the backend ledger.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Draft sessions live in Postgres when configured, else in memory
	// with a TTL janitor.
	var draftRepo portsrepo.DraftRepositoryFacade
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			os.Exit(1)
		}

		draftRepo = pgsql.NewDraftRepository(dbPool)
	} else {
		draftRepo = memory.NewDraftRepository()
	}
	memory.StartJanitor(ctx, draftRepo, cfg.DraftTTL, time.Minute)

	// Outbound collaborators
	ledgerClient := ledger.NewClient(cfg.LedgerAPIURL)
	salesClient := sales.NewClient(cfg.SalesAPIURL)

	serviceContainer := services.NewServiceContainer(
		&portsrepo.RepositoryProvider{DraftRepo: draftRepo},
		ledgerClient,
		salesClient,
		services.WithDefaults(services.Defaults{
			Account:       cfg.DefaultAccount,
			CategoryGroup: cfg.DefaultCategoryGroup,
			TaxRate:       cfg.DefaultTaxRate,
		}),
		services.WithRetainAccountOnReset(cfg.RetainAccountOnReset),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending "up" migrations through a temporary
// database/sql connection compatible with the pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
