package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/actions"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/randomuser"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Endpoint   string // overrides the config endpoint when set
	Debug      bool
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	client, err := randomuser.NewClient(randomuser.Options{
		Endpoint: cfg.Endpoint,
		Seed:     cfg.Seed,
		Results:  cfg.FetchSize,
		Total:    cfg.TotalResults,
		Timeout:  cfg.RequestTimeout,
		Logger:   logger.Named("randomuser"),
	})
	if err != nil {
		return fmt.Errorf("init directory client: %w", err)
	}

	logger.Info("roster starting",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("seed", cfg.Seed),
		zap.Int("page_size", cfg.PageSize),
		zap.String("locale", cfg.Locale.String()))

	store := state.NewStore(initialSnapshot(cfg, userPrefs), logger.Named("state"))

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Loader:    NewLoader(client, logger.Named("loader")),
		Runner:    actions.New(cfg.ActionDelay, logger.Named("actions")),
		Logger:    logger.Named("ui"),
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		NoticeTTL: cfg.NoticeTTL,
		LogFile:   cfg.LogFile,
	})
}

func initialSnapshot(cfg config.Config, p prefs.Prefs) state.Snapshot {
	snap := state.New(cfg.PageSize, cfg.TotalResults, cfg.Locale)
	snap.Key = p.SortKey()
	snap.Order = p.SortOrder()
	if p.GridView() {
		snap.View = state.GridView
	}
	return snap
}
