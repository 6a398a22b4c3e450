package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adibhanna/workoutsessions/internal/config"
	"github.com/adibhanna/workoutsessions/internal/logging"
	"github.com/adibhanna/workoutsessions/internal/plans"
	"github.com/adibhanna/workoutsessions/internal/storage"
)

var (
	configPath string
	logLevel   string
	logStdout  bool
)

// app is everything a command needs once flags and config are resolved.
type app struct {
	cfg     *config.Config
	store   *storage.Storage
	catalog *plans.Catalog
	log     *logrus.Entry
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workoutsessions",
		Short: "Guided workouts in your terminal",
		Long: `workoutsessions walks you through a workout plan one set at a time,
counting rest between sets and exercises and recording your history.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.runTUI(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logStdout, "log-stdout", false, "Also write logs to stderr")

	rootCmd.AddCommand(NewPlansCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewRunCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   logStdout || cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})

	return newApp(cfg)
}

func newApp(cfg *config.Config) (*app, error) {
	log := logrus.WithField("component", "cli")

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	catalog := plans.NewCatalog()
	n, err := catalog.LoadDir(cfg.PlansDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	if n > 0 {
		log.WithField("count", n).WithField("dir", cfg.PlansDir).Info("loaded custom plans")
	}

	if cfg.DefaultPlan != "" {
		if err := catalog.SetDefault(cfg.DefaultPlan); err != nil {
			return nil, fmt.Errorf("default plan %q: %w", cfg.DefaultPlan, err)
		}
	}

	return &app{
		cfg:     cfg,
		store:   store,
		catalog: catalog,
		log:     log,
	}, nil
}
