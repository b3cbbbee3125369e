package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/app"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	env        string
	configDir  string
	skipSeed   bool
	skipMigrate bool

	rootCmd = &cobra.Command{
		Use:           "bunk-loyalty",
		Short:         "Loyalty points backend for fuel bunks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return a.Migrate(ctx)
			})
		},
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Create the global config and the first admin when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return a.Seed(ctx)
			})
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bunk-loyalty version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "configuration profile (development, test, production); defaults to BP_ENV")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "extra directory searched for <env>.yaml")

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations on start")
		cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "do not seed on start")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("bunk-loyalty: %v", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, coreport.Logger, error) {
	var extra []string
	if configDir != "" {
		extra = append(extra, configDir)
	}
	cfg, err := config.LoadConfig(env, extra...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if warnings := productionWarnings(cfg); len(warnings) > 0 {
		logger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
	return cfg, logger, nil
}

// withApp runs fn against a connected App and releases it afterwards
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Flush() }()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to release resources", map[string]any{"error": err.Error()})
		}
	}()

	return fn(ctx, a)
}

func runServe(cmd *cobra.Command, _ []string) error {
	return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
		if !skipMigrate {
			if err := a.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		if !skipSeed {
			if err := a.Seed(ctx); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
		}

		server := a.Server()
		serveErr := make(chan error, 1)
		go func() {
			a.Logger.Info("Starting server", map[string]any{
				"addr":    server.Addr,
				"env":     a.Config.Environment,
				"version": version,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err, ok := <-serveErr:
			if ok {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		a.Logger.Info("Shutting down server...", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
			return err
		}
		a.Logger.Info("Server exited gracefully", nil)
		return nil
	})
}

// productionWarnings lists settings that work but are unsafe in production
func productionWarnings(cfg *config.Config) []string {
	if cfg.Environment != config.Production {
		return nil
	}

	var warnings []string
	if cfg.Database.Driver == "postgres" {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
		}
	}
	if cfg.Database.Driver == "sqlite" {
		warnings = append(warnings, "sqlite serializes every write; use postgres or mysql in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if cfg.Auth.RevocationStore == "memory" {
		warnings = append(warnings, "auth.revocationStore memory is not shared between replicas")
	}
	return warnings
}
