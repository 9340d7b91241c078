package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/hcl"
	"github.com/vk/gradlerun/internal/launch"
	"github.com/vk/gradlerun/internal/yamlcfg"
)

// Launcher runs a Gradle invocation. *launch.Runner is the production
// implementation.
type Launcher interface {
	Run(ctx context.Context, inv *launch.Invocation) error
}

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	launcher Launcher
	resolved *lru.Cache[uint64, *resolvedRun]
}

// Option customizes an App, mostly for tests.
type Option func(*App)

// WithLoader replaces the default HCL+YAML settings loader.
func WithLoader(l config.Loader) Option {
	return func(a *App) { a.loader = l }
}

// WithLauncher replaces the process launcher.
func WithLauncher(l Launcher) Option {
	return func(a *App) { a.launcher = l }
}

// NewApp returns an App that prints results to outW and logs to logW. Gradle
// output, when launching, also goes to outW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	cache, err := lru.New[uint64, *resolvedRun](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution cache: %w", err)
	}

	a := &App{
		outW:     outW,
		logger:   newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config:   cfg,
		loader:   config.MultiLoader{hcl.NewLoader(), yamlcfg.NewLoader()},
		launcher: &launch.Runner{Stdout: outW, Stderr: logW},
		resolved: cache,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("App configured.", "settings_paths", cfg.SettingsPaths, "execute", cfg.Execute)
	return a, nil
}
