package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopadmin/admin"
	"shopadmin/api"
	"shopadmin/config"
	"shopadmin/ui"
)

// app carries what every command shares once the root pre-run has loaded it.
type app struct {
	verbose bool
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "shopadmin",
		Short: "Terminal console for the store's admin and retail backends",
		Long: `shopadmin manages admin users, roles, the catalog, retailers and customers
of the store through its admin and retail HTTP APIs.

Run without arguments to start the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			// The dashboard owns the terminal, so it logs to a file.
			toFile := cmd == cmd.Root() || cmd.Name() == "tui"
			a.log, err = newLogger(cfg, a.verbose, toFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: a.runTUI,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Start the interactive dashboard",
			Args:  cobra.NoArgs,
			RunE:  a.runTUI,
		},
		a.listCmd(),
		a.serveMockCmd(),
		a.tokenCmd(),
	)
	return root
}

// newLogger builds the production zap logger at the configured level.
func newLogger(cfg config.Config, verbose, toFile bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.EnvLogLevel, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if toFile && cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zc.Build()
}

func (a *app) console() *admin.Console {
	return admin.NewConsole(api.NewFromConfig(a.cfg, a.log), a.log)
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	a.log.Info("starting dashboard",
		zap.String("admin_api", a.cfg.AdminAPIURL), zap.String("retail_api", a.cfg.RetailAPIURL))
	return ui.Run(cmd.Context(), a.console(), a.log, ui.Options{Debounce: a.cfg.SearchDebounce})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
