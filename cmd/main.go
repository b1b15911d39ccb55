package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ownerhunter/internal/config"
	"ownerhunter/internal/database"
	"ownerhunter/internal/hunter"
	"ownerhunter/internal/loader"
	"ownerhunter/internal/report"
)

var (
	// Global flags
	configPath string
	inputPath  string
	outputPath string
	sourceName string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd runs the enrichment pipeline
var rootCmd = &cobra.Command{
	Use:   "ownerhunter",
	Short: "Enrich a filings masterlist with Registered Agent search links",
	Long: `ownerhunter reads a masterlist of registered business entities and writes two reports:

  targets_with_links.csv                 entities worth chasing, ranked Denied, Revoked,
                                         Suspended, Conditional, Active, each with a
                                         search link that surfaces its Registered Agent
  targets_with_links_ghost_offices.csv   entities registered without a street address

Nothing is fetched; the links are for a human investigator to follow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runHunt,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file; relative paths inside it resolve against its directory")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "masterlist JSON (default lib/masterlist.json)")
	rootCmd.PersistentFlags().StringVar(&outputPath, "output", "", "targets CSV (default lib/targets_with_links.csv)")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "entity source: json or oracle")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(browseCmd, watchlistCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ownerhunter: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, the environment and flags, then resolves paths.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath, wd)
	if err != nil {
		return config.Config{}, err
	}

	// Flag paths are relative to where the user typed them.
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = absFrom(wd, inputPath)
	}
	if flags.Changed("output") {
		cfg.Output = absFrom(wd, outputPath)
	}
	if flags.Changed("source") {
		cfg.Source = sourceName
	}
	return cfg.Resolve()
}

func absFrom(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// openSource returns the configured entity source and a func to release it.
func openSource(ctx context.Context, cfg config.Config) (loader.Source, func(), error) {
	switch cfg.Source {
	case config.SourceOracle:
		dbCfg := database.LoadDatabaseConfig(filepath.Join(cfg.BaseDir, ".env"))
		db, err := database.NewDatabase(ctx, dbCfg, cfg.Database.Table, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return loader.NewJSONFile(cfg.Input, logger), func() {}, nil
	}
}

// hunt loads, classifies and ranks the configured masterlist.
func hunt(ctx context.Context, cfg config.Config) (hunter.Result, error) {
	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return hunter.Result{}, err
	}
	defer closeSource()

	return hunter.New(src, hunter.NewLinkGenerator(cfg.Search), logger).Run(ctx)
}

func runHunt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := hunt(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	written, err := report.Write(cfg.Output, res, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintSummary(out, res, written, report.IsTerminal(out))
	return nil
}
