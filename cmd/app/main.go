package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailorshop/api"
	"tailorshop/cmd"
	httpin "tailorshop/internal/adapters/in/http"
	"tailorshop/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "tailorshop",
		Short:         "Tailoring marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCommand(), migrateCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("tailorshop: %v", err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations, start the payment jobs and serve the HTTP API",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			return postgres.Migrate(configs.DatabaseURL(), newLogger())
		},
	}
}

func serve(ctx context.Context) error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	var gormDB *gorm.DB
	if configs.StorageBackend == cmd.StorageBackendPostgres {
		if err = postgres.Migrate(configs.DatabaseURL(), logger); err != nil {
			return err
		}
		gormDB, err = gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}
	e, err := newEcho(ctx, app, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "port", configs.HTTPPort, "storage", configs.StorageBackend)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEcho(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	server, err := app.CreateServer()
	if err != nil {
		return nil, err
	}
	authenticator, err := app.CreateAuthenticator()
	if err != nil {
		return nil, err
	}

	accessLog := zerolog.New(os.Stdout).With().Timestamp().Str("service", "tailorshop").Logger()
	return httpin.NewEcho(server, httpin.Options{
		Doc:           doc,
		Authenticator: authenticator,
		AccessLog:     accessLog,
		Logger:        logger,
	})
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
