package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/smartfarm/internal/cli"
	"github.com/alexanderramin/smartfarm/internal/config"
	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
	"github.com/alexanderramin/smartfarm/internal/repository"
	"github.com/alexanderramin/smartfarm/internal/responder"
	"github.com/alexanderramin/smartfarm/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional explicit config file; otherwise ~/.smartfarm/config.yaml if present.
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	kb, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	historyRepo := repository.NewSQLiteChatHistoryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	observer := service.NewZapUseCaseObserver(logger)
	resp := responder.New(kb)

	app := &cli.App{
		Profiles:  service.NewProfileService(profileRepo, uow, observer),
		Chat:      service.NewChatService(profileRepo, historyRepo, uow, resp, cfg.History, observer),
		Responder: resp,
		Catalog:   kb,
		Version:   version,
	}

	// Detect interactive terminal for the chat TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("db_path", cfg.DBPath),
		zap.Int("topics", kb.Len()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newLogger returns a JSON production logger at the configured level, or a
// no-op logger when logging is disabled so the TUI output stays clean.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	if cfg.Path != "" {
		zc.OutputPaths = []string{cfg.Path}
		zc.ErrorOutputPaths = []string{cfg.Path}
	}
	return zc.Build()
}

func loadCatalog(path string) (*knowledge.KnowledgeBase, error) {
	if path == "" {
		return knowledge.Default()
	}
	kb, err := knowledge.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return kb, nil
}
