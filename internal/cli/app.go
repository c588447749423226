package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/docfab/docgen/internal/config"
	"github.com/docfab/docgen/internal/domain/client"
	"github.com/docfab/docgen/internal/domain/counter"
	"github.com/docfab/docgen/internal/domain/document"
	"github.com/docfab/docgen/internal/domain/project"
	"github.com/docfab/docgen/internal/jsonfile"
	"github.com/docfab/docgen/internal/locale"
	"github.com/docfab/docgen/internal/repository"
	"github.com/docfab/docgen/internal/sqlite"
)

// app holds the registries for one invocation. Close releases the storage
// handle on every exit path.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	loc       *locale.Locale
	clients   *client.Service
	projects  *project.Service
	documents *document.Service
	alloc     *counter.Allocator

	closer io.Closer
}

// backendRepos is what a storage backend contributes to the app.
type backendRepos struct {
	clients   repository.ClientRepository
	projects  repository.ProjectRepository
	documents repository.DocumentRepository
	counters  repository.CounterRepository
	closer    io.Closer
}

// openApp loads configuration, opens the configured backend, and wires the
// registries. Callers must Close the returned app.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	repos, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	alloc := counter.NewAllocator(repos.counters, logger)
	clientSvc := client.NewService(repos.clients, repos.projects, alloc, logger)
	projectSvc := project.NewService(repos.projects, repos.clients, logger)
	documentSvc := document.NewService(repos.documents, repos.clients, repos.projects, alloc, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		loc:       locFromConfig(cfg),
		clients:   clientSvc,
		projects:  projectSvc,
		documents: documentSvc,
		alloc:     alloc,
		closer:    repos.closer,
	}, nil
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func openBackend(cfg config.Config) (backendRepos, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return backendRepos{}, fmt.Errorf("creating data directory: %w", err)
		}
		db, err := sqlite.New(cfg.DBPath())
		if err != nil {
			return backendRepos{}, err
		}
		if err := db.Init(); err != nil {
			db.Close()
			return backendRepos{}, err
		}
		return backendRepos{
			clients:   sqlite.NewClientRepository(db),
			projects:  sqlite.NewProjectRepository(db),
			documents: sqlite.NewDocumentRepository(db),
			counters:  sqlite.NewCounterRepository(db),
			closer:    db,
		}, nil

	default:
		return backendRepos{
			clients:   jsonfile.NewClientRepository(cfg.ClientsPath()),
			projects:  jsonfile.NewProjectRepository(cfg.ProjectsPath()),
			documents: jsonfile.NewDocumentRepository(cfg.DocumentsPath()),
			counters:  jsonfile.NewCounterRepository(cfg.CountersPath()),
		}, nil
	}
}

func locFromConfig(cfg config.Config) *locale.Locale {
	return locale.New(locale.Detect(cfg.Language, cfg.Storage.Dir))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
