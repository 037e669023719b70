// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/migrations"
	"github.com/JaimeStill/file-flow/pkg/database"
	"github.com/JaimeStill/file-flow/pkg/lifecycle"
	"github.com/JaimeStill/file-flow/pkg/logging"
	"github.com/JaimeStill/file-flow/pkg/metrics"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Metrics   *metrics.System
	Clock     func() time.Time

	migrate     bool
	databaseURL string
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:   lc,
		Logger:      logger,
		Database:    db,
		Metrics:     metrics.New(&cfg.Metrics),
		Clock:       func() time.Time { return time.Now().UTC() },
		migrate:     cfg.MigrateOnStart(),
		databaseURL: cfg.Database.URL(migrations.Scheme),
	}, nil
}

// Start connects the database and, when configured, applies pending migrations.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.migrate {
		if err := i.Migrate(); err != nil {
			return err
		}
	}
	return nil
}

// Migrate applies all pending schema migrations.
func (i *Infrastructure) Migrate() error {
	runner, err := migrations.New(i.databaseURL, i.Logger)
	if err != nil {
		return fmt.Errorf("migrations init failed: %w", err)
	}
	defer runner.Close()

	if err := runner.Up(); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}
