package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/ctxlog"
	"github.com/vk/gradlerun/internal/launch"
	"github.com/vk/gradlerun/internal/runconfig"
)

// resolvedRun is one selected run after resolution.
type resolvedRun struct {
	Name        string                    `json:"name"`
	Project     string                    `json:"project"`
	DuplicateOf string                    `json:"duplicate_of,omitempty"`
	Arguments   runconfig.GradleArguments `json:"arguments"`
	Command     *launch.Invocation        `json:"command"`

	run *runconfig.RunConfiguration
}

// Run loads the settings, resolves the selected runs and prints or launches
// them. Runs that resolve to a configuration equal to an earlier one are
// reported as duplicates and launched only once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.resolved.Purge()

	paths, err := a.settingsPaths()
	if err != nil {
		return err
	}
	model, err := a.loader.Load(ctx, paths...)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.logger.Info("Settings loaded.", "projects", len(model.Projects), "runs", len(model.Runs))

	names, err := a.selectRuns(model)
	if err != nil {
		return err
	}
	// Every selected run must stay cached until the last one is resolved.
	a.resolved.Resize(max(a.config.CacheSize, len(names)))

	results := make([]*resolvedRun, 0, len(names))
	for _, name := range names {
		result, err := a.resolve(ctx, model, name)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if !a.config.Execute {
		return a.report(results)
	}

	for _, r := range results {
		if r.DuplicateOf != "" {
			a.logger.Warn("Skipping run with the same configuration as an earlier one.", "run", r.Name, "duplicate_of", r.DuplicateOf)
			continue
		}
		if err := launch.Describe(a.outW, r.Arguments); err != nil {
			return err
		}
		if err := a.launcher.Run(ctx, r.Command); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// settingsPaths returns the paths to load. A path the user named must
// exist; the implicit default is dropped when missing.
func (a *App) settingsPaths() ([]string, error) {
	paths := make([]string, 0, len(a.config.SettingsPaths))
	for _, p := range a.config.SettingsPaths {
		_, err := os.Stat(p)
		switch {
		case err == nil:
			paths = append(paths, p)
		case errors.Is(err, fs.ErrNotExist) && a.config.defaultSettings:
			a.logger.Warn("Default settings file not found.", "path", p)
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("settings path %s does not exist", p)
		default:
			return nil, fmt.Errorf("failed to access settings path %s: %w", p, err)
		}
	}
	return paths, nil
}

func (a *App) selectRuns(model *config.Model) ([]string, error) {
	if a.config.All {
		names := model.RunNames()
		if len(names) == 0 {
			a.logger.Warn("No runs declared in the settings.")
		}
		return names, nil
	}
	for _, name := range a.config.Runs {
		if _, ok := model.Runs[name]; !ok {
			return nil, fmt.Errorf("unknown run %q, declared runs: %v", name, model.RunNames())
		}
	}
	return a.config.Runs, nil
}

// resolve builds the run configuration for name. Equal configurations share
// one cache entry keyed by their hash.
func (a *App) resolve(ctx context.Context, model *config.Model, name string) (*resolvedRun, error) {
	logger := ctxlog.FromContext(ctx)
	def := model.Runs[name]

	run, err := runconfig.New(model.Projects[def.Project], def.Properties)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", name, err)
	}

	key := run.Hash()
	if prev, ok := a.resolved.Get(key); ok && prev.run.Equal(run) {
		logger.Debug("Run resolves to a known configuration.", "run", name, "duplicate_of", prev.Name)
		return &resolvedRun{
			Name:        name,
			Project:     def.Project,
			DuplicateOf: prev.Name,
			Arguments:   prev.Arguments.Clone(),
			Command:     prev.Command,
			run:         run,
		}, nil
	}

	args := run.ToGradleArguments()
	inv, err := launch.Command(args)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", name, err)
	}
	logger.Debug("Run resolved.", "run", name, "project", def.Project,
		"override_build_settings", run.OverridesBuildSettings(),
		"distribution", args.GradleDistribution.String())

	result := &resolvedRun{Name: name, Project: def.Project, Arguments: args, Command: inv, run: run}
	a.resolved.Add(key, result)
	return result, nil
}
