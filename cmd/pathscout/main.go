package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/pathscout/internal/catalog"
	"github.com/csheth/pathscout/internal/config"
	"github.com/csheth/pathscout/internal/export"
	"github.com/csheth/pathscout/internal/logging"
	"github.com/csheth/pathscout/internal/tui"
)

// app carries the flag values and the dependencies built from them.
type app struct {
	configPath  string
	logFile     string
	downloadDir string
	verbose     bool
	noAltScreen bool

	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathscout",
		Short: "PathScout - personalized learning paths in your terminal",
		Long: `PathScout turns a topic and a skill level into a learning roadmap:
phases, projects, resources, career options and matching courses.

Run without arguments to start the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of the configured one")
	flags.StringVar(&a.downloadDir, "download-dir", "", "directory roadmap exports are written to")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	root.AddCommand(
		a.newGenerateCmd(),
		a.newCourseCmd(),
		a.newTopicsCmd(),
		a.newConfigCmd(),
	)
	return root
}

// setup loads .env, the config file and the environment, applies flag
// overrides and builds the logger and catalog.
func (a *app) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	if a.downloadDir != "" {
		cfg.DownloadDir = a.downloadDir
	}
	if a.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	courses, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.catalog = courses
	logger.Debug("configuration loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("config", a.configPath),
		zap.String("download_dir", cfg.DownloadDir),
		zap.Int("courses", len(courses.Entries())))
	return nil
}

func (a *app) exporter() *export.Exporter {
	exporter := export.New(a.cfg.DownloadDir, a.logger)
	exporter.Delay = a.cfg.Export.Delay
	return exporter
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if ctx := cmd.Context(); ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}

	program := tea.NewProgram(
		tui.New(tui.Config{
			Catalog:        a.catalog,
			Exporter:       a.exporter(),
			Logger:         a.logger,
			Timing:         a.cfg.Timing(),
			ToastTTL:       a.cfg.UI.NotifyTTL,
			RecommendLimit: a.cfg.UI.RecommendLimit,
			MarkdownStyle:  style,
		}),
		opts...,
	)

	a.logger.Info("starting interactive session", zap.Bool("alt_screen", a.cfg.UI.AltScreen))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
