// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"

	"github.com/agentpad/agentpad/internal/domain"
	"github.com/agentpad/agentpad/internal/infra/config"
	"github.com/agentpad/agentpad/internal/infra/gitroot"
	"github.com/agentpad/agentpad/internal/infra/logging"
	"github.com/agentpad/agentpad/internal/infra/padstore"
	"github.com/agentpad/agentpad/internal/infra/watch"
	"github.com/agentpad/agentpad/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	RepoRoot string // Root directory of the repository (or cwd outside one)
	PadPath  string // Path to the scratchpad file
	LogPath  string // Path to the application log file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Pad     domain.EntryLog
	Watcher domain.PadWatcher
	Clock   domain.Clock
	Logger  domain.Logger

	// Loaded application config (agent identity, pad location, log level)
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container rooted at the enclosing git repository of dir,
// or at dir itself when outside a repository.
func New(dir string) (*Container, error) {
	root := gitroot.Find(dir)

	appConfig, err := config.NewLoader(root).Load()
	if err != nil {
		return nil, err
	}

	cfg := Config{
		RepoRoot: root,
		PadPath:  domain.PadPath(root, appConfig.Pad.File),
	}
	cfg.LogPath = domain.LogPath(cfg.PadPath)

	return &Container{
		Pad:       padstore.New(cfg.PadPath),
		Watcher:   watch.New(cfg.PadPath),
		Clock:     domain.RealClock{},
		Logger:    logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level)),
		AppConfig: appConfig,
		Config:    cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, pad domain.EntryLog, watcher domain.PadWatcher, clock domain.Clock, appConfig *domain.Config) *Container {
	return &Container{
		Pad:       pad,
		Watcher:   watcher,
		Clock:     clock,
		Logger:    logging.New("", slog.LevelInfo),
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// RebindPadFile points the container at a different pad file. Used by the
// --file flag; the log file moves alongside the pad.
func (c *Container) RebindPadFile(path string) {
	c.Config.PadPath = domain.PadPath(c.Config.RepoRoot, path)
	c.Config.LogPath = domain.LogPath(c.Config.PadPath)
	c.Pad = padstore.New(c.Config.PadPath)
	c.Watcher = watch.New(c.Config.PadPath)
	c.Logger = logging.New(c.Config.LogPath, logging.ParseLevel(c.AppConfig.Log.Level))
}

// UseCase factory methods

// InitPadUseCase returns a new InitPad use case.
func (c *Container) InitPadUseCase() *usecase.InitPad {
	return usecase.NewInitPad(c.Pad, c.Logger)
}

// AddEntryUseCase returns a new AddEntry use case.
func (c *Container) AddEntryUseCase() *usecase.AddEntry {
	return usecase.NewAddEntry(c.Pad, c.Clock, c.Logger)
}

// TailEntriesUseCase returns a new TailEntries use case.
func (c *Container) TailEntriesUseCase() *usecase.TailEntries {
	return usecase.NewTailEntries(c.Pad, c.Logger)
}

// OpenQuestionsUseCase returns a new OpenQuestions use case.
func (c *Container) OpenQuestionsUseCase() *usecase.OpenQuestions {
	return usecase.NewOpenQuestions(c.Pad, c.Logger)
}

// FilterEntriesUseCase returns a new FilterEntries use case.
func (c *Container) FilterEntriesUseCase() *usecase.FilterEntries {
	return usecase.NewFilterEntries(c.Pad, c.Logger)
}

// WatchEntriesUseCase returns a new WatchEntries use case.
func (c *Container) WatchEntriesUseCase() *usecase.WatchEntries {
	return usecase.NewWatchEntries(c.Pad, c.Watcher, c.Logger)
}
