// Package yamlcfg loads Gradle workspace, project and run settings from YAML
// files. It accepts the same keys as the HCL format, with projects and runs
// given as maps keyed by name:
//
//	workspace:
//	  gradle_distribution: "4.9"
//	projects:
//	  app:
//	    project_dir: ./app
//	runs:
//	  build:
//	    project: app
//	    tasks: [clean, build]
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/ctxlog"
	"github.com/vk/gradlerun/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions the loader picks up from directories.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	Workspace *settingsNode          `yaml:"workspace"`
	Projects  map[string]projectNode `yaml:"projects"`
	Runs      map[string]runNode     `yaml:"runs"`
}

type settingsNode struct {
	GradleDistribution *string      `yaml:"gradle_distribution"`
	GradleUserHome     *string      `yaml:"gradle_user_home"`
	JavaHome           *string      `yaml:"java_home"`
	Arguments          argumentList `yaml:"arguments"`
	JvmArguments       argumentList `yaml:"jvm_arguments"`
	OfflineMode        *bool        `yaml:"offline_mode"`
	BuildScansEnabled  *bool        `yaml:"build_scans_enabled"`
	ShowExecutionsView *bool        `yaml:"show_executions_view"`
	ShowConsoleView    *bool        `yaml:"show_console_view"`
}

type projectNode struct {
	ProjectDir                string `yaml:"project_dir"`
	OverrideWorkspaceSettings *bool  `yaml:"override_workspace_settings"`
	AutoSync                  *bool  `yaml:"auto_sync"`
	settingsNode              `yaml:",inline"`
}

type runNode struct {
	Project               string   `yaml:"project"`
	Tasks                 []string `yaml:"tasks"`
	OverrideBuildSettings *bool    `yaml:"override_build_settings"`
	settingsNode          `yaml:",inline"`
}

// argumentList accepts a sequence of strings or a single string split with
// shell quoting rules. values stays nil when the key is absent.
type argumentList struct {
	values []string
}

func (a *argumentList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		words, err := shellquote.Split(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: cannot split argument string: %w", value.Line, err)
		}
		a.values = append([]string{}, words...)
		return nil
	case yaml.SequenceNode:
		out := []string{}
		if err := value.Decode(&out); err != nil {
			return fmt.Errorf("line %d: all arguments must be strings: %w", value.Line, err)
		}
		a.values = out
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

func (s settingsNode) decl() config.SettingsDecl {
	return config.SettingsDecl{
		GradleDistribution: s.GradleDistribution,
		GradleUserHome:     s.GradleUserHome,
		JavaHome:           s.JavaHome,
		Arguments:          s.Arguments.values,
		JvmArguments:       s.JvmArguments.values,
		OfflineMode:        s.OfflineMode,
		BuildScansEnabled:  s.BuildScansEnabled,
		ShowExecutionsView: s.ShowExecutionsView,
		ShowConsoleView:    s.ShowConsoleView,
	}
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under paths and builds the settings model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	decls, err := l.ReadDeclarations(ctx, paths...)
	if err != nil {
		return nil, err
	}
	model, err := decls.Build()
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("YAML loading complete.", "projects", len(model.Projects), "runs", len(model.Runs))
	return model, nil
}

// ReadDeclarations parses every YAML file under paths without validating
// references between files.
func (l *Loader) ReadDeclarations(ctx context.Context, paths ...string) (*config.Declarations, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	decls := &config.Declarations{}
	for _, file := range files {
		fileDecls, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		if err := decls.Merge(fileDecls); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

func decodeFile(file string) (*config.Declarations, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	baseDir := filepath.Dir(file)
	decls := &config.Declarations{}
	if doc.Workspace != nil {
		ws := doc.Workspace.decl()
		decls.Workspace = &ws
		decls.WorkspaceOrigin = file + ": workspace"
	}

	for _, name := range sortedKeys(doc.Projects) {
		p := doc.Projects[name]
		dir := p.ProjectDir
		if dir != "" {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(baseDir, dir)
			}
			dir = filepath.Clean(dir)
		}
		decls.Projects = append(decls.Projects, config.ProjectDecl{
			Name:                      name,
			ProjectDir:                dir,
			OverrideWorkspaceSettings: p.OverrideWorkspaceSettings,
			AutoSync:                  p.AutoSync,
			Settings:                  p.settingsNode.decl(),
			Origin:                    fmt.Sprintf("%s: projects.%s", file, name),
		})
	}

	for _, name := range sortedKeys(doc.Runs) {
		r := doc.Runs[name]
		decls.Runs = append(decls.Runs, config.RunDecl{
			Name:                  name,
			Project:               r.Project,
			Tasks:                 r.Tasks,
			OverrideBuildSettings: r.OverrideBuildSettings,
			Settings:              r.settingsNode.decl(),
			Origin:                fmt.Sprintf("%s: runs.%s", file, name),
		})
	}
	return decls, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
