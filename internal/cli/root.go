// Package cli provides the pantry command-line interface. Commands run
// against the same database and extraction stack as the daemon; nothing here
// goes through gRPC.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/gen/ent"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	extractopenai "github.com/pantryops/pantryd/internal/extract/openai"
	"github.com/pantryops/pantryd/internal/repository"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	verbose bool

	cfg    *common.Config
	logger *slog.Logger

	// Lazy-initialized shared state
	entc *ent.Client
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Grocery inventory ingestion toolkit",
	Long: `Pantry converts free-form grocery text into validated inventory
mutations: parse input, apply update batches, run the tool-mediated agent
flow, and inspect interaction metrics.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		cfg = common.LoadConfig()
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger, _ = common.SetupLogger("", level)
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if entc != nil {
			if err := entc.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
	},
}

// getClient opens the database on first use. Commands that only parse text
// never pay for a connection.
func getClient(ctx context.Context) (*ent.Client, error) {
	if entc != nil {
		return entc, nil
	}
	if cfg.Database.SQLitePath != "" {
		client, err := repository.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		entc = client
		return entc, nil
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("one of DB_URL or SQLITE_PATH is required")
	}
	client, _, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	entc = client
	return entc, nil
}

// getExtractor builds the provider-plus-fallback extraction service.
func getExtractor() (*extract.Service, error) {
	fallback, err := extract.NewFallbackParser(logger)
	if err != nil {
		return nil, fmt.Errorf("load fallback tables: %w", err)
	}
	provider := extractopenai.FromAppConfig(cfg.Extract, logger)
	return extract.NewService(provider, fallback, cfg.Extract.Timeout, logger), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(seedCmd)
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
