// Package cmd provides CLI commands for jweb.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/core/services"
	"github.com/Odongfelix/jweb/internal/middleware"
	"github.com/Odongfelix/jweb/internal/platform/bootstrap"
	"github.com/Odongfelix/jweb/internal/platform/config"
	"github.com/spf13/cobra"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "jweb",
	Short: "Manage exchange rates and export journal entry reports",
	Long: `jweb works against the same rate store and accounting API as the server.

Example:
  jweb rate show
  jweb rate save 3700
  jweb report export --format xlsx --from 2024-05-01 --to 2024-05-31`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(reportCmd)
}

// withServices loads configuration, opens the stores and runs fn with the
// service container. The logger is attached to ctx the way requests get one.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.Default()
	ctx := middleware.WithLogger(cmd.Context(), logger)

	repos, cleanup, err := bootstrap.NewRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, cfg, services.NewServiceContainer(cfg, repos))
}
