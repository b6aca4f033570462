// Package cli implements the gendergap command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/internal/config"
	"github.com/sartorproj/gendergap/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// defaultConfigFile is used when --config is not given and the file exists.
const defaultConfigFile = "gendergap.yaml"

type appKey struct{}

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Inputs     []string
	Output     string
}

// App carries the loaded configuration and logger through the command tree.
type App struct {
	Config *config.Config
	Logger logging.Logger
	Output string
}

// NewRootCommand creates the root command with global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gendergap",
		Short: "Dense annual gender-gap series with damped-trend projections",
		Long: "gendergap reads sparse per-region or per-country observations from CSV,\n" +
			"fills every year of a fixed range by interpolation, projects a damped\n" +
			"trend into future years and reports frames, gaps and decade averages.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ./"+defaultConfigFile+" if present)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides log.level")
	pf.StringSliceVarP(&opts.Inputs, "input", "i", nil, "input CSV files; overrides input.files")
	pf.StringVarP(&opts.Output, "output", "o", "text", "output format for reports (text, json)")

	cmd.AddCommand(
		newBuildCmd(),
		newFrameCmd(),
		newGapCmd(),
		newDecadeCmd(),
		newLatestCmd(),
		newMetricsCmd(),
		newConfigCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("invalid output format %q (must be text or json)", opts.Output)
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg, opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	app := &App{Config: cfg, Logger: logger, Output: opts.Output}
	cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, app))
	return nil
}

// initConfig loads configuration with priority flags > env > file > defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if len(opts.Inputs) > 0 {
		cfg.Input.Files = opts.Inputs
	}
	return cfg, nil
}

func initLogger(cfg *config.Config, opts *RootOptions) (logging.Logger, error) {
	logCfg := cfg.Log
	if opts.LogLevel != "" {
		logCfg.Level = opts.LogLevel
	}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, err
	}
	return logger.Named("gendergap"), nil
}

// GetApp extracts the App stored by the root command.
func GetApp(cmd *cobra.Command) (*App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command context is nil")
	}
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}

// Execute runs the command tree and prints any error to stderr.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	return nil
}
