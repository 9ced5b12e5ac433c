// Package pgtest boots a throwaway PostgreSQL for the repository integration
// suites and seeds the rows their foreign keys need.
package pgtest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	postgresadapter "tailorshop/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated PostgreSQL 15 container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	URL       string
}

// Start runs the container and applies the embedded migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("read connection string: %w", err)
	}

	if err = postgresadapter.Migrate(url, slog.New(slog.DiscardHandler)); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &Database{Container: container, DB: db, URL: url}, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate() error {
	return d.DB.Exec(
		"TRUNCATE TABLE payments, deliveries, orders, measurement_sets, materials, tailors, users CASCADE",
	).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
