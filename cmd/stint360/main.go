// Command stint360 runs the Stint360 API.
//
//	stint360 serve     start the HTTP server
//	stint360 migrate   apply the database migrations and exit
//	stint360 preview   render an email template with sample data
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/database"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/handler"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/lib/email"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/logger"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/repository"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/router"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "stint360",
		Short:        "Stint360 manages departments, managers, employees and their tasks.",
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd(), newMigrateCmd(), newPreviewCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			loggerService := logger.NewLoggerService(cfg.Observability)
			defer loggerService.Shutdown()

			log := logger.NewLoggerWithService(cfg.Observability, loggerService)

			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [template]",
		Short: "Render an email template with sample data to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.TemplateTaskAssigned
			if len(args) == 1 {
				name = email.Template(args[0])
			}

			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("unknown email template %q", name)
			}

			html, err := email.Render(name, data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
}

func serve(parent context.Context, migrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Outside production the schema is brought up to date on every start.
	if migrate || !cfg.Observability.IsProduction() {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)

	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
