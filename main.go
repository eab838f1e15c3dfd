package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schemegrip/internal/catalog"
	"schemegrip/internal/config"
	"schemegrip/internal/eventbus"
	"schemegrip/internal/logging"
	"schemegrip/internal/ui"
)

// flags shared by every command
var (
	configPath string
	sourceKind string
	sourceFile string
	mongoURI   string
	platform   string
	logFile    string
	watch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "schemegrip [path]",
	Short: "Browse color schemes ranked by their GitHub stars",
	Long: `schemegrip shows a catalog of color scheme repositories as a grid of cards.

Pages are addressed by path: "/" is trending, "/top", "/new" and "/recent"
sort by stars, creation and last commit, and "/top/page/2" is the second page.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&sourceKind, "source", "", `catalog source: "file" or "mongo"`)
	flags.StringVar(&sourceFile, "file", "", "JSON catalog file")
	flags.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	flags.StringVar(&platform, "platform", "", "platform shown in titles, e.g. vim")
	flags.StringVar(&logFile, "log-file", "", "log file")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload when the catalog file changes")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(pagesCmd)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.NewConfigService().LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Kind = sourceKind
	}
	if flags.Changed("file") {
		cfg.Source.File = sourceFile
		if !flags.Changed("source") {
			cfg.Source.Kind = config.SourceFile
		}
	}
	if flags.Changed("mongo-uri") {
		cfg.Source.MongoURI = mongoURI
		if !flags.Changed("source") {
			cfg.Source.Kind = config.SourceMongo
		}
	}
	if flags.Changed("platform") {
		cfg.Platform = platform
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// openSource connects the configured catalog backend
func openSource(ctx context.Context, cfg *config.Config) (catalog.Source, error) {
	switch cfg.Source.Kind {
	case config.SourceMongo:
		source, err := catalog.ConnectMongo(ctx, cfg.Source.MongoURI, cfg.Source.Database, cfg.Source.Collection, cfg.Platform, cfg.Source.Timeout())
		if err != nil {
			return nil, err
		}
		return source, nil
	case config.SourceFile:
		if _, err := os.Stat(cfg.Source.File); err != nil {
			return nil, fmt.Errorf("catalog file: %w", err)
		}
		return catalog.NewFileSource(cfg.Source.File, cfg.Platform), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

// setup loads config, logging and the catalog source for a command
func setup(cmd *cobra.Command) (*config.Config, catalog.Source, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	source, err := openSource(cmd.Context(), cfg)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := source.Close(context.Background()); err != nil {
			zap.L().Warn("failed to close catalog source", zap.Error(err))
		}
		closeLog()
	}
	return cfg, source, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}

	cfg, source, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	loader := catalog.NewLoader(bus, source, cfg.PageSize)
	defer loader.Stop()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, path)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward loader answers and catalog changes to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventPageLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventCatalogChanged, forward)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if watch {
		if cfg.Source.Kind != config.SourceFile {
			return errors.New("--watch needs a file catalog")
		}
		go func() {
			if err := catalog.Watch(ctx, bus, cfg.Source.File); err != nil {
				zap.L().Error("catalog watch stopped", zap.Error(err))
			}
		}()
	}

	if os.Getenv("SCHEMEGRIP_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	zap.L().Info("starting UI", zap.String("path", path), zap.String("source", cfg.Source.Kind))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		zap.L().Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	zap.L().Info("UI exited normally")
	return nil
}
